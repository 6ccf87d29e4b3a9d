package models

import (
	"strings"
	"time"
)

// CreatedAtLayout is the fixed format post timestamps arrive in,
// e.g. "Mon Jan 02 15:04:05 +0000 2006".
const CreatedAtLayout = "Mon Jan 02 15:04:05 -0700 2006"

// Rating is the content rating of a post.
// Ratings are ordered: RatingSafe < RatingQuestionable < RatingExplicit.
type Rating int

const (
	RatingSafe Rating = iota
	RatingQuestionable
	RatingExplicit
)

// String returns the lowercase rating name as used in search meta-tags.
func (r Rating) String() string {
	switch r {
	case RatingQuestionable:
		return "questionable"
	case RatingExplicit:
		return "explicit"
	default:
		return "safe"
	}
}

// ParseRating maps a rating name or its single-letter code to a Rating.
func ParseRating(s string) (Rating, error) {
	switch strings.ToLower(s) {
	case "s", "safe":
		return RatingSafe, nil
	case "q", "questionable":
		return RatingQuestionable, nil
	case "e", "explicit":
		return RatingExplicit, nil
	}
	return 0, &MappingError{Field: "rating", Value: s}
}

// Post is a single post record as returned by the posts endpoint.
// Raw fields hold wire values; derived values go through the accessors.
type Post struct {
	ID            int64  `json:"id"`
	CreatedAtRaw  string `json:"created_at"` // see CreatedAtLayout
	Score         int    `json:"score"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	PreviewWidth  int    `json:"preview_width"`
	PreviewHeight int    `json:"preview_height"`
	SampleWidth   int    `json:"sample_width"`
	SampleHeight  int    `json:"sample_height"`
	Sample        int    `json:"sample"`
	Directory     string `json:"directory"`
	Image         string `json:"image"`
	Change        int64  `json:"change"`
	Owner         string `json:"owner"`
	ParentID      *int64 `json:"parent_id"` // nullable - top-level posts have no parent
	RatingRaw     string `json:"rating"`    // s, q or e
	Tags          string `json:"tags"`      // space-joined tag names
	Title         string `json:"title"`
	Source        string `json:"source"`
	FileURL       string `json:"file_url"`
	PostLocked    int    `json:"post_locked"`
}

// Rating classifies the raw rating code. Codes outside {s, q, e} yield a
// *MappingError.
func (p *Post) Rating() (Rating, error) {
	if p.RatingRaw != "" {
		switch p.RatingRaw[0] {
		case 's':
			return RatingSafe, nil
		case 'q':
			return RatingQuestionable, nil
		case 'e':
			return RatingExplicit, nil
		}
	}
	return 0, &MappingError{Field: "rating", Value: p.RatingRaw}
}

// CreatedAt parses the creation timestamp. A timestamp that does not match
// CreatedAtLayout yields a *MappingError.
func (p *Post) CreatedAt() (time.Time, error) {
	t, err := time.Parse(CreatedAtLayout, p.CreatedAtRaw)
	if err != nil {
		return time.Time{}, &MappingError{Field: "created_at", Value: p.CreatedAtRaw}
	}
	return t, nil
}

// TagList splits the space-joined tag string, preserving server order.
// The split is recomputed on every call.
func (p *Post) TagList() []string {
	return strings.Fields(p.Tags)
}

// Dimensions returns the full image width and height.
func (p *Post) Dimensions() (width, height int) {
	return p.Width, p.Height
}

// PreviewDimensions returns the thumbnail width and height.
func (p *Post) PreviewDimensions() (width, height int) {
	return p.PreviewWidth, p.PreviewHeight
}

// SampleDimensions returns the sample (downscaled) width and height.
func (p *Post) SampleDimensions() (width, height int) {
	return p.SampleWidth, p.SampleHeight
}

// Locked reports whether the post is locked against edits.
func (p *Post) Locked() bool {
	return p.PostLocked != 0
}
