package models

import "fmt"

// MappingError reports a decoded field whose raw wire value falls outside
// the recognized set for its derived type. The remote vocabulary can grow,
// so callers get an error they can inspect rather than a crash.
type MappingError struct {
	Field string // record field the value came from
	Value string // offending raw value
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("unrecognized %s value %q", e.Field, e.Value)
}
