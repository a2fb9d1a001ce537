package vec

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vector3 is an immutable 3D displacement.
type Vector3 v3.Vec

var (
	Zero3  = Vector3{X: 0, Y: 0, Z: 0}
	UnitX3 = Vector3{X: 1, Y: 0, Z: 0}
	UnitY3 = Vector3{X: 0, Y: 1, Z: 0}
	UnitZ3 = Vector3{X: 0, Y: 0, Z: 1}
)

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector3FromSlice builds a vector from exactly three coordinates.
func NewVector3FromSlice(xs []float64) (Vector3, error) {
	if len(xs) != 3 {
		return Vector3{}, fmt.Errorf("vector3: got %d values: %w", len(xs), ErrArity)
	}
	return Vector3{X: xs[0], Y: xs[1], Z: xs[2]}, nil
}

func (a Vector3) sdf() v3.Vec { return v3.Vec(a) }

func (a Vector3) Add(b Vector3) Vector3 { return Vector3(a.sdf().Add(b.sdf())) }

func (a Vector3) Sub(b Vector3) Vector3 { return Vector3(a.sdf().Sub(b.sdf())) }

func (a Vector3) Scale(k float64) Vector3 { return Vector3(a.sdf().MulScalar(k)) }

// Div divides every component by k.
func (a Vector3) Div(k float64) Vector3 { return a.Scale(1 / k) }

func (a Vector3) Neg() Vector3 { return a.Scale(-1) }

func (a Vector3) Dot(b Vector3) float64 { return a.sdf().Dot(b.sdf()) }

func (a Vector3) Cross(b Vector3) Vector3 { return Vector3(a.sdf().Cross(b.sdf())) }

func (a Vector3) Length() float64 { return a.sdf().Length() }

// Normalize returns the unit vector with the direction of a.
func (a Vector3) Normalize() (Vector3, error) {
	l := a.Length()
	if IsZero(l) {
		return Vector3{}, fmt.Errorf("normalize %s: %w", a, ErrZeroLength)
	}
	return a.Div(l), nil
}

func (a Vector3) IsZero() bool { return IsZero(a.Length()) }

// ApproxEqual compares components with tolerance Epsilon.
func (a Vector3) ApproxEqual(b Vector3) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y) && ApproxEqual(a.Z, b.Z)
}

// IsParallel reports whether the cross product is approximately the zero
// vector. A zero vector is parallel to everything.
func (a Vector3) IsParallel(b Vector3) bool {
	return a.Cross(b).ApproxEqual(Zero3)
}

// IsPerpendicular reports whether the dot product is approximately zero.
func (a Vector3) IsPerpendicular(b Vector3) bool {
	return IsZero(a.Dot(b))
}

func (a Vector3) Components() []float64 { return []float64{a.X, a.Y, a.Z} }

func (a Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", a.X, a.Y, a.Z)
}
