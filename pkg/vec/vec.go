// Package vec provides the 2D and 3D point and vector value types used by
// the line family in pkg/geom. The arithmetic is delegated to the
// github.com/deadsy/sdfx vector packages; this package adds approximate
// equality, checked normalization and checked construction from raw
// coordinate slices.
package vec

import (
	"errors"
	"math"
)

// Epsilon is the absolute tolerance used by every approximate comparison.
const Epsilon = 1e-5

var (
	// ErrZeroLength is returned when normalizing a vector whose length is
	// approximately zero.
	ErrZeroLength = errors.New("vector has zero length")

	// ErrArity is returned when a point or vector is built from a slice of
	// the wrong length.
	ErrArity = errors.New("wrong number of coordinates")
)

// ApproxEqual reports whether a and b differ by at most Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// IsZero reports whether x is within Epsilon of zero.
func IsZero(x float64) bool {
	return math.Abs(x) <= Epsilon
}

// Vector is the capability the line family needs from a displacement type.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float64) V
	Neg() V
	Dot(V) float64
	Length() float64
	Normalize() (V, error)
	IsZero() bool
	ApproxEqual(V) bool
	IsParallel(V) bool
	IsPerpendicular(V) bool
	Components() []float64
	String() string
}

// Point is the capability the line family needs from a position type whose
// displacements are of type V.
type Point[P any, V Vector[V]] interface {
	Sub(P) V
	VectorTo(P) V
	Translate(V) P
	DistanceTo(P) float64
	ApproxEqual(P) bool
	Components() []float64
	String() string
}
