package models

// Attributes is the pagination metadata the service reports with every
// response envelope.
type Attributes struct {
	Limit  uint `json:"limit"`
	Offset uint `json:"offset"`
	Count  uint `json:"count"` // total matches, not just this page
}

// PostQuery is the decoded envelope of a posts search. When a search has no
// results the service omits the item array entirely; Posts is then empty.
type PostQuery struct {
	Attributes Attributes `json:"@attributes"`
	Posts      []Post     `json:"post"`
}

// TagQuery is the decoded envelope of a tags search.
type TagQuery struct {
	Attributes Attributes `json:"@attributes"`
	Tags       []Tag      `json:"tag"`
}
