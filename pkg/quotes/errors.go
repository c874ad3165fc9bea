package quotes

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is returned when the quotes file cannot be opened or read.
	ErrSourceUnavailable = errors.New("quote source unavailable")

	// ErrMalformedLine is the parent of every per-line parse error.
	ErrMalformedLine = errors.New("malformed quote line")

	// ErrEmptyStore is returned when picking from a store with no quotes.
	ErrEmptyStore = errors.New("quote store is empty")
)

// SourceUnavailableError wraps an I/O failure on the quotes file.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("could not read quotes from %s: %v", e.Path, e.Err)
}

// Unwrap returns both the sentinel and the underlying I/O error.
func (e *SourceUnavailableError) Unwrap() []error {
	return []error{ErrSourceUnavailable, e.Err}
}

// MissingFieldError means a line had fewer than three fields, or an empty
// quote or speaker.
type MissingFieldError struct {
	Line  int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("line %d: could not read %s", e.Line, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMalformedLine
}

// MalformedTagError means the season/episode field did not look like S3E07.
type MalformedTagError struct {
	Line int
	Tag  string
}

func (e *MalformedTagError) Error() string {
	return fmt.Sprintf("line %d: malformed season/episode tag %q", e.Line, e.Tag)
}

func (e *MalformedTagError) Unwrap() error {
	return ErrMalformedLine
}

// NumericRangeError means a season or episode number does not fit in 0-255.
type NumericRangeError struct {
	Line  int
	Field string
	Value string
}

func (e *NumericRangeError) Error() string {
	return fmt.Sprintf("line %d: %s %q is out of range (0-255)", e.Line, e.Field, e.Value)
}

func (e *NumericRangeError) Unwrap() error {
	return ErrMalformedLine
}

// LineTooLongError means a line exceeded MaxLineSize.
type LineTooLongError struct {
	Line int
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("line %d: longer than %d bytes", e.Line, MaxLineSize)
}

func (e *LineTooLongError) Unwrap() error {
	return ErrMalformedLine
}
