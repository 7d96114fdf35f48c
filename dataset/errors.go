package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is wrapped by every *ParseError.
	ErrFormat = errors.New("dataset: malformed document")

	// ErrPermutation is returned by Permute for a slice that is not a
	// permutation of the row indices.
	ErrPermutation = errors.New("dataset: invalid permutation")

	// ErrTooLarge is returned when a compressed document decodes to more
	// than the configured maximum size.
	ErrTooLarge = errors.New("dataset: document too large")
)

// ParseError reports a malformed line of a text document, or a document
// level problem when Line is 0.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", ErrFormat, e.Reason)
	}
	return fmt.Sprintf("%s: line %d: %s", ErrFormat, e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrFormat }
