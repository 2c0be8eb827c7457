package vecknn

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecknn/vector"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrNilVector is returned when the query or a sample carries no vector.
	ErrNilVector = errors.New("vector must not be nil")
)

// ErrDimensionMismatch indicates that a sample's dimension differs from the query's.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Index    int // Index of the offending sample.
	Expected int // Expected is the query dimension.
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("sample %d: dimension mismatch: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// translateError maps vector errors for the sample at index into public errors.
func translateError(index int, err error) error {
	if err == nil {
		return nil
	}

	var dm *vector.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Index: index, Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}

	return fmt.Errorf("sample %d: %w", index, err)
}
