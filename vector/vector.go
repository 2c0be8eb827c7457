package vector

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Vector is a fixed-dimension tuple of float64 coordinates with a cached
// Euclidean norm.
//
// The norm always equals ComputeNorm(v.Coordinates()): the only mutators, Add
// and Scale, recompute it.
type Vector struct {
	coordinates []float64
	norm        float64
}

// New creates a vector from coords. The slice is copied.
func New(coords []float64) (*Vector, error) {
	if len(coords) == 0 {
		return nil, ErrEmptyVector
	}
	return newOwned(slices.Clone(coords)), nil
}

// MustNew is like New but panics on error. Intended for literals in tests and examples.
func MustNew(coords ...float64) *Vector {
	v, err := New(coords)
	if err != nil {
		panic(err)
	}
	return v
}

// newOwned takes ownership of coords without copying.
func newOwned(coords []float64) *Vector {
	return &Vector{
		coordinates: coords,
		norm:        ComputeNorm(coords),
	}
}

// Dim returns the number of coordinates.
func (v *Vector) Dim() int { return len(v.coordinates) }

// Norm returns the cached Euclidean norm.
func (v *Vector) Norm() float64 { return v.norm }

// At returns the i-th coordinate.
func (v *Vector) At(i int) float64 { return v.coordinates[i] }

// Coordinates returns a copy of the coordinates.
func (v *Vector) Coordinates() []float64 { return slices.Clone(v.coordinates) }

// Add adds other to v in place, index-aligned, and refreshes the norm.
func (v *Vector) Add(other *Vector) error {
	if err := CheckDimension(v, other); err != nil {
		return err
	}
	floats.Add(v.coordinates, other.coordinates)
	v.norm = ComputeNorm(v.coordinates)
	return nil
}

// Scale multiplies every coordinate of v by scalar in place and refreshes the norm.
func (v *Vector) Scale(scalar float64) {
	floats.Scale(scalar, v.coordinates)
	v.norm = ComputeNorm(v.coordinates)
}

// Dot returns the dot product of v and other.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := CheckDimension(v, other); err != nil {
		return 0, err
	}
	return floats.Dot(v.coordinates, other.coordinates), nil
}

// Equal reports whether v and other have identical coordinates.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil {
		return false
	}
	return floats.Equal(v.coordinates, other.coordinates)
}

func (v *Vector) String() string {
	return fmt.Sprintf("%v", v.coordinates)
}

// ComputeDistance returns the Euclidean distance between a and b.
// It is symmetric in its arguments.
func ComputeDistance(a, b *Vector) (float64, error) {
	if err := CheckDimension(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a.coordinates, b.coordinates, 2), nil
}

// ComputeNorm returns the Euclidean norm of a raw coordinate slice.
func ComputeNorm(coords []float64) float64 {
	return floats.Norm(coords, 2)
}

// DotProduct returns the dot product of a and b. Equivalent to a.Dot(b).
func DotProduct(a, b *Vector) (float64, error) {
	return a.Dot(b)
}

// HadamardProduct returns a new vector whose i-th coordinate is a[i]*b[i].
func HadamardProduct(a, b *Vector) (*Vector, error) {
	if err := CheckDimension(a, b); err != nil {
		return nil, err
	}
	return newOwned(floats.MulTo(make([]float64, a.Dim()), a.coordinates, b.coordinates)), nil
}

// AddVectors returns a new vector whose i-th coordinate is a[i]+b[i].
// Neither operand is modified.
func AddVectors(a, b *Vector) (*Vector, error) {
	if err := CheckDimension(a, b); err != nil {
		return nil, err
	}
	return newOwned(floats.AddTo(make([]float64, a.Dim()), a.coordinates, b.coordinates)), nil
}
