package vector

import (
	"errors"
	"fmt"
)

// ErrEmptyVector is returned when a vector is constructed without coordinates.
var ErrEmptyVector = errors.New("vector must have at least one coordinate")

// ErrDimensionMismatch indicates that two operands have different dimensions.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// CheckDimension returns an *ErrDimensionMismatch if a and b differ in dimension.
// a is treated as the reference operand.
func CheckDimension(a, b *Vector) error {
	if a.Dim() != b.Dim() {
		return &ErrDimensionMismatch{Expected: a.Dim(), Actual: b.Dim()}
	}
	return nil
}
