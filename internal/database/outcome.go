package database

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is an expected outcome, not a failure.
	ErrNotFound = errors.New("record not found")
	// ErrEmptySearchTerm is returned before the store is touched.
	ErrEmptySearchTerm = errors.New("search term is required")
)

// MissingFieldError names the first required field absent from a payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}
