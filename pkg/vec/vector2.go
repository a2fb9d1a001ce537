package vec

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Vector2 is an immutable 2D displacement.
type Vector2 v2.Vec

var (
	Zero2  = Vector2{X: 0, Y: 0}
	UnitX2 = Vector2{X: 1, Y: 0}
	UnitY2 = Vector2{X: 0, Y: 1}
)

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// NewVector2FromSlice builds a vector from exactly two coordinates.
func NewVector2FromSlice(xs []float64) (Vector2, error) {
	if len(xs) != 2 {
		return Vector2{}, fmt.Errorf("vector2: got %d values: %w", len(xs), ErrArity)
	}
	return Vector2{X: xs[0], Y: xs[1]}, nil
}

func (a Vector2) sdf() v2.Vec { return v2.Vec(a) }

func (a Vector2) Add(b Vector2) Vector2 { return Vector2(a.sdf().Add(b.sdf())) }

func (a Vector2) Sub(b Vector2) Vector2 { return Vector2(a.sdf().Sub(b.sdf())) }

func (a Vector2) Scale(k float64) Vector2 { return Vector2(a.sdf().MulScalar(k)) }

// Div divides every component by k.
func (a Vector2) Div(k float64) Vector2 { return a.Scale(1 / k) }

func (a Vector2) Neg() Vector2 { return a.Scale(-1) }

func (a Vector2) Dot(b Vector2) float64 { return a.sdf().Dot(b.sdf()) }

// Cross returns the z component of the 3D cross product of a and b, i.e.
// the determinant x1*y2 - y1*x2.
func (a Vector2) Cross(b Vector2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func (a Vector2) Length() float64 { return a.sdf().Length() }

// Normalize returns the unit vector with the direction of a.
func (a Vector2) Normalize() (Vector2, error) {
	l := a.Length()
	if IsZero(l) {
		return Vector2{}, fmt.Errorf("normalize %s: %w", a, ErrZeroLength)
	}
	return a.Div(l), nil
}

func (a Vector2) IsZero() bool { return IsZero(a.Length()) }

// ApproxEqual compares components with tolerance Epsilon.
func (a Vector2) ApproxEqual(b Vector2) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y)
}

// IsParallel reports whether x1*y2 ≈ y1*x2. A zero vector is parallel to
// everything.
func (a Vector2) IsParallel(b Vector2) bool {
	return ApproxEqual(a.X*b.Y, a.Y*b.X)
}

// IsPerpendicular reports whether the dot product is approximately zero.
func (a Vector2) IsPerpendicular(b Vector2) bool {
	return IsZero(a.Dot(b))
}

func (a Vector2) Components() []float64 { return []float64{a.X, a.Y} }

// Angle returns the polar angle of a in radians, in (-π, π].
func (a Vector2) Angle() float64 { return math.Atan2(a.Y, a.X) }

func (a Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", a.X, a.Y)
}
