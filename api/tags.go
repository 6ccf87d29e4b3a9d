package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/snowkase/gelbooru-go/models"
)

const defaultTagLimit = 100

// Ordering selects the field tags are sorted by.
type Ordering int

const (
	OrderDate Ordering = iota
	OrderCount
	OrderName
)

func (o Ordering) queryValue() string {
	switch o {
	case OrderCount:
		return "count"
	case OrderName:
		return "name"
	default:
		return "date"
	}
}

// Tags starts a tags search.
//
//	result, err := api.Tags().
//		Limit(10).
//		OrderBy(api.OrderCount).
//		Ascending(false).
//		Send(client)
func Tags() *TagsBuilder {
	return &TagsBuilder{}
}

// TagsBuilder accumulates filters for a tags search. A search mode (Name,
// Names, Pattern) is chosen by the terminal call; Send queries without one.
type TagsBuilder struct {
	limit     *int
	afterID   *int
	orderBy   *Ordering
	ascending *bool
}

// tagSearch is the mode-specific parameter of a tags query, with the limit
// applied when the caller set none.
type tagSearch struct {
	param        string
	value        string
	defaultLimit int
}

// Limit caps the number of tags returned. When unset the default depends
// on the search mode: 1 for Name, len(names) for Names, otherwise 100.
func (b *TagsBuilder) Limit(n int) *TagsBuilder {
	b.limit = &n
	return b
}

// AfterID restricts results to tags with an id greater than the given one.
func (b *TagsBuilder) AfterID(id int) *TagsBuilder {
	b.afterID = &id
	return b
}

// OrderBy sets the field tags are sorted by. When unset the server default
// order applies.
func (b *TagsBuilder) OrderBy(ordering Ordering) *TagsBuilder {
	b.orderBy = &ordering
	return b
}

// Ascending sets the sort direction.
func (b *TagsBuilder) Ascending(ascending bool) *TagsBuilder {
	b.ascending = &ascending
	return b
}

// Send queries without a name specifier (a plain listing).
func (b *TagsBuilder) Send(client *Client) (*models.TagQuery, error) {
	return b.search(client, nil)
}

// Name fetches the tag with the given exact name. Returns nil when no such
// tag exists.
func (b *TagsBuilder) Name(client *Client, name string) (*models.Tag, error) {
	query, err := b.search(client, &tagSearch{
		param:        "name",
		value:        name,
		defaultLimit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(query.Tags) == 0 {
		return nil, nil
	}
	return &query.Tags[0], nil
}

// Names fetches the given tags in one query. The limit defaults to
// covering every requested name.
func (b *TagsBuilder) Names(client *Client, names []string) (*models.TagQuery, error) {
	return b.search(client, &tagSearch{
		param:        "names",
		value:        strings.Join(names, " "),
		defaultLimit: len(names),
	})
}

// Pattern searches tag names with SQL-LIKE wildcards: `_` matches a single
// character, `%` matches any run ("%choolgirl%" behaves like *choolgirl*).
func (b *TagsBuilder) Pattern(client *Client, pattern string) (*models.TagQuery, error) {
	return b.search(client, &tagSearch{
		param:        "name_pattern",
		value:        pattern,
		defaultLimit: defaultTagLimit,
	})
}

func (b *TagsBuilder) params(mode *tagSearch) url.Values {
	limit := defaultTagLimit
	if mode != nil {
		limit = mode.defaultLimit
	}
	if b.limit != nil {
		limit = *b.limit
	}

	params := url.Values{}
	params.Set("s", "tag")
	params.Set("limit", strconv.Itoa(limit))

	if b.afterID != nil {
		params.Set("after_id", strconv.Itoa(*b.afterID))
	}
	if b.orderBy != nil {
		params.Set("orderby", b.orderBy.queryValue())
	}
	if b.ascending != nil {
		order := "DESC"
		if *b.ascending {
			order = "ASC"
		}
		params.Set("order", order)
	}
	if mode != nil {
		params.Set(mode.param, mode.value)
	}

	return params
}

func (b *TagsBuilder) search(client *Client, mode *tagSearch) (*models.TagQuery, error) {
	var query models.TagQuery
	if err := client.call(b.params(mode), &query); err != nil {
		return nil, err
	}
	return &query, nil
}
