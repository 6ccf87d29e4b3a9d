package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TagType is the category of a tag.
type TagType int

const (
	TagTypeArtist TagType = iota
	TagTypeCharacter
	TagTypeCopyright
	TagTypeDeprecated
	TagTypeMetadata
	TagTypeGeneral // plain "tag" on the wire
)

// String returns the wire code for the tag type.
func (t TagType) String() string {
	switch t {
	case TagTypeArtist:
		return "artist"
	case TagTypeCharacter:
		return "character"
	case TagTypeCopyright:
		return "copyright"
	case TagTypeDeprecated:
		return "deprecated"
	case TagTypeMetadata:
		return "metadata"
	default:
		return "tag"
	}
}

// WireUint is an unsigned integer that some endpoint shapes transmit as a
// JSON number and others as a numeric string. Both decode into it.
type WireUint uint64

func (n *WireUint) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("numeric wire value %q: %w", s, err)
	}
	*n = WireUint(v)
	return nil
}

// WireString holds a scalar that may arrive quoted or bare. The bare form
// is kept as its literal token, so a wire 0 compares equal to "0".
type WireString string

func (s *WireString) UnmarshalJSON(data []byte) error {
	*s = WireString(strings.Trim(string(data), `"`))
	return nil
}

// Tag is a single tag record as returned by the tags endpoint.
type Tag struct {
	ID           WireUint   `json:"id"`
	Name         string     `json:"tag"`
	Count        WireUint   `json:"count"` // how many posts carry the tag
	TypeRaw      string     `json:"type"`
	AmbiguousRaw WireString `json:"ambiguous"`
}

// Type classifies the raw type code. Unrecognized codes yield a
// *MappingError.
func (t *Tag) Type() (TagType, error) {
	switch t.TypeRaw {
	case "artist":
		return TagTypeArtist, nil
	case "character":
		return TagTypeCharacter, nil
	case "copyright":
		return TagTypeCopyright, nil
	case "deprecated":
		return TagTypeDeprecated, nil
	case "metadata":
		return TagTypeMetadata, nil
	case "tag":
		return TagTypeGeneral, nil
	}
	return 0, &MappingError{Field: "type", Value: t.TypeRaw}
}

// Ambiguous reports whether the tag name is flagged as ambiguous.
// Anything other than the literal "0" counts as ambiguous.
func (t *Tag) Ambiguous() bool {
	return t.AmbiguousRaw != "0"
}
