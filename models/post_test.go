package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRating(t *testing.T) {
	tests := []struct {
		raw  string
		want Rating
	}{
		{"s", RatingSafe},
		{"q", RatingQuestionable},
		{"e", RatingExplicit},
		{"safe", RatingSafe},
		{"questionable", RatingQuestionable},
		{"explicit", RatingExplicit},
	}

	for _, tt := range tests {
		post := Post{RatingRaw: tt.raw}
		got, err := post.Rating()
		require.NoError(t, err, "rating %q", tt.raw)
		assert.Equal(t, tt.want, got, "rating %q", tt.raw)
	}
}

func TestPostRatingOrdering(t *testing.T) {
	assert.Less(t, RatingSafe, RatingQuestionable)
	assert.Less(t, RatingQuestionable, RatingExplicit)
}

func TestPostRatingDefect(t *testing.T) {
	for _, raw := range []string{"", "x", "general"} {
		post := Post{RatingRaw: raw}
		_, err := post.Rating()
		require.Error(t, err, "rating %q", raw)

		var mapErr *MappingError
		require.ErrorAs(t, err, &mapErr)
		assert.Equal(t, "rating", mapErr.Field)
		assert.Equal(t, raw, mapErr.Value)
	}
}

func TestPostCreatedAtRoundTrip(t *testing.T) {
	post := Post{CreatedAtRaw: "Mon Jan 02 15:04:05 +0000 2006"}

	parsed, err := post.CreatedAt()
	require.NoError(t, err)

	reparsed, err := time.Parse(CreatedAtLayout, parsed.Format(CreatedAtLayout))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(reparsed), "reformatting must preserve the instant")

	assert.Equal(t, 2006, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 15, parsed.Hour())
}

func TestPostCreatedAtDefect(t *testing.T) {
	post := Post{CreatedAtRaw: "2006-01-02T15:04:05Z"}
	_, err := post.CreatedAt()
	require.Error(t, err)

	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "created_at", mapErr.Field)
}

func TestPostTagList(t *testing.T) {
	post := Post{Tags: "hatsune_miku solo vocaloid"}
	assert.Equal(t, []string{"hatsune_miku", "solo", "vocaloid"}, post.TagList())

	assert.Empty(t, (&Post{}).TagList())
	// duplicates and server order are preserved
	assert.Equal(t, []string{"b", "a", "b"}, (&Post{Tags: "b a b"}).TagList())
}

func TestPostDimensions(t *testing.T) {
	post := Post{
		Width: 1920, Height: 1080,
		PreviewWidth: 192, PreviewHeight: 108,
		SampleWidth: 960, SampleHeight: 540,
	}

	w, h := post.Dimensions()
	assert.Equal(t, [2]int{1920, 1080}, [2]int{w, h})
	w, h = post.PreviewDimensions()
	assert.Equal(t, [2]int{192, 108}, [2]int{w, h})
	w, h = post.SampleDimensions()
	assert.Equal(t, [2]int{960, 540}, [2]int{w, h})
}

func TestPostDecode(t *testing.T) {
	raw := `{
		"id": 9001,
		"created_at": "Mon Jan 02 15:04:05 +0000 2006",
		"score": 12,
		"width": 1920,
		"height": 1080,
		"owner": "someone",
		"parent_id": null,
		"rating": "s",
		"tags": "hatsune_miku solo",
		"file_url": "https://img.example/full.png",
		"post_locked": 1
	}`

	var post Post
	require.NoError(t, json.Unmarshal([]byte(raw), &post))

	assert.Equal(t, int64(9001), post.ID)
	assert.Nil(t, post.ParentID)
	assert.True(t, post.Locked())

	rating, err := post.Rating()
	require.NoError(t, err)
	assert.Equal(t, RatingSafe, rating)
}
