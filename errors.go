package artgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/artgo/internal/prototype"
	"github.com/hupe1980/artgo/internal/resonance"
)

var (
	// ErrNotConverged is wrapped by Result.Err when the pass budget ran out
	// before a zero-change pass.
	ErrNotConverged = errors.New("clustering did not converge")

	// ErrNotAssigned is returned by Step before a successful Assign.
	ErrNotAssigned = errors.New("no assignment to continue")
)

// ErrCapacityExceeded indicates that an item failed every active cluster and
// no inactive prototype slot was left.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCapacityExceeded struct {
	Item     int
	Capacity int
	cause    error
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("capacity exceeded: item %d needs a new cluster, all %d slots are active", e.Item, e.Capacity)
}

func (e *ErrCapacityExceeded) Unwrap() error { return e.cause }

// ErrInvalidInput indicates a malformed input matrix. No state is touched
// when it is returned.
//
// Column is -1 when the problem concerns a whole row; Row is also -1 when it
// concerns the matrix shape.
type ErrInvalidInput struct {
	Row    int
	Column int
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	if e.Row < 0 {
		return "invalid input: " + e.Reason
	}
	if e.Column < 0 {
		return fmt.Sprintf("invalid input: row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("invalid input: row %d, column %d: %s", e.Row, e.Column, e.Reason)
}

// ErrInvalidConfig indicates an out-of-range engine parameter.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidConfig struct {
	Field string
	Value any
	cause error
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid config: %s = %v", e.Field, e.Value)
}

func (e *ErrInvalidConfig) Unwrap() error { return e.cause }

func translateError(err error, capacity int) error {
	if err == nil {
		return nil
	}

	var ie *resonance.ItemError
	if errors.As(err, &ie) && errors.Is(err, prototype.ErrCapacityExceeded) {
		return &ErrCapacityExceeded{Item: ie.Item, Capacity: capacity, cause: err}
	}

	return err
}
