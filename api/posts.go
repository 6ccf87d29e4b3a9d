package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/snowkase/gelbooru-go/models"
)

// server-side default when no limit is given
const defaultPostLimit = 100

// Posts starts a posts search.
//
//	page, err := api.Posts().
//		Limit(50).
//		Rating(models.RatingSafe).
//		Tags("hatsune_miku", "solo").
//		Send(client)
func Posts() *PostsBuilder {
	return &PostsBuilder{}
}

// PostsBuilder accumulates filters for a posts search. The zero value is a
// valid unfiltered query; an empty tag expression is passed through and the
// server answers with its default-ordered feed.
type PostsBuilder struct {
	limit   *int
	tags    []string
	tagsRaw string
	rating  *models.Rating
	random  bool
}

// Limit caps the number of posts returned. The server default is 100.
func (b *PostsBuilder) Limit(n int) *PostsBuilder {
	b.limit = &n
	return b
}

// Tag adds a single tag to the list of tags to search for.
func (b *PostsBuilder) Tag(tag string) *PostsBuilder {
	b.tags = append(b.tags, tag)
	return b
}

// Tags appends tags to the list of tags to search for. Any combination that
// works on the website works here, including meta-tags. Previously added
// tags are kept; see ClearTags.
func (b *PostsBuilder) Tags(tags ...string) *PostsBuilder {
	b.tags = append(b.tags, tags...)
	return b
}

// RawTags replaces the raw suffix appended verbatim to the tag expression.
// Nothing is validated, so a malformed suffix can break the whole query.
// Mostly useful for meta-tags.
func (b *PostsBuilder) RawTags(raw string) *PostsBuilder {
	b.tagsRaw = raw
	return b
}

// ClearTags drops all added tags and the raw suffix.
func (b *PostsBuilder) ClearTags() *PostsBuilder {
	b.tags = nil
	b.tagsRaw = ""
	return b
}

// Rating filters by content rating.
func (b *PostsBuilder) Rating(rating models.Rating) *PostsBuilder {
	b.rating = &rating
	return b
}

// Random asks the server to randomize post order (the sort:random
// meta-tag).
func (b *PostsBuilder) Random(random bool) *PostsBuilder {
	b.random = random
	return b
}

// tagExpression compiles the search expression in fixed order: rating
// meta-tag, sort:random, added tags, raw suffix.
func (b *PostsBuilder) tagExpression() string {
	var expr strings.Builder
	if b.rating != nil {
		expr.WriteString("rating:" + b.rating.String() + " ")
	}
	if b.random {
		expr.WriteString("sort:random ")
	}
	expr.WriteString(strings.Join(b.tags, " "))
	if b.tagsRaw != "" {
		expr.WriteString(" " + b.tagsRaw)
	}
	return expr.String()
}

func (b *PostsBuilder) params() url.Values {
	limit := defaultPostLimit
	if b.limit != nil {
		limit = *b.limit
	}

	params := url.Values{}
	params.Set("s", "post")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("tags", b.tagExpression())
	return params
}

// Send executes the search on the given client.
func (b *PostsBuilder) Send(client *Client) (*models.PostQuery, error) {
	var query models.PostQuery
	if err := client.call(b.params(), &query); err != nil {
		return nil, err
	}
	return &query, nil
}
