package professional

import (
	"errors"
	"fmt"
)

// ErrNoRecords means a run finished without a single valid record.
var ErrNoRecords = errors.New("no valid records collected")

var ErrUnknownField = errors.New("unknown record field")

// ValidationError describes a candidate dropped for a missing required field.
type ValidationError struct {
	Field string
	Name  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record %q: missing required field %s", e.Name, e.Field)
}

// ErrNotFound is returned by readers for an unknown phone.
var ErrNotFound = errors.New("professional not found")
