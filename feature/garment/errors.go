package garment

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when no item carries the requested product code.
	ErrItemNotFound = errors.New("item not found")
	// ErrNegativePrice rejects records priced below zero.
	ErrNegativePrice = errors.New("price must not be negative")
	// ErrNoSizes rejects records that list no size.
	ErrNoSizes = errors.New("at least one size is required")
	// ErrMalformedRecord rejects lines that do not follow the record layout.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnknownSource is returned for an unsupported catalog source.
	ErrUnknownSource = errors.New("unknown catalog source")
)

// ParseError describes a rejected inventory record.
type ParseError struct {
	// Line is the 1-based line in the inventory file, or 0 for records not read from text.
	Line int
	// Field names the offending field.
	Field string
	// Raw is the offending input.
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Raw, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError is returned when a search request cannot be turned into criteria.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
