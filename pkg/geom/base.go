package geom

import (
	"fmt"

	"github.com/chazu/lineal/pkg/vec"
)

// Axial is anything that lies on a parametrized axis: a fixed point, a unit
// direction and the interval of axis coordinates it covers. The relational
// queries only need this much of an object.
type Axial[P vec.Point[P, V], V vec.Vector[V]] interface {
	FixedPoint() P
	Direction() V
	Bounds() Bounds
	Contains(p P) bool
}

// Base is the state shared by every line-like object. A point Q belongs to
// the object iff Q = FixedPoint + t*Direction for some t in Bounds.
type Base[P vec.Point[P, V], V vec.Vector[V]] struct {
	fixed  P
	dir    V
	bounds Bounds
}

func newBase[P vec.Point[P, V], V vec.Vector[V]](fixed P, dir V, b Bounds) (Base[P, V], error) {
	u, err := dir.Normalize()
	if err != nil {
		return Base[P, V]{}, fmt.Errorf("%w: %w", ErrZeroDirection, err)
	}
	return Base[P, V]{fixed: fixed, dir: u, bounds: b}, nil
}

// FixedPoint returns the origin of the object's number axis.
func (b Base[P, V]) FixedPoint() P { return b.fixed }

// Direction returns the unit vector of the object's number axis.
func (b Base[P, V]) Direction() V { return b.dir }

func (b Base[P, V]) Bounds() Bounds { return b.bounds }

// At returns the point with axis coordinate t. The point belongs to the
// object only if t is within Bounds.
func (b Base[P, V]) At(t float64) P {
	return b.fixed.Translate(b.dir.Scale(t))
}

// ParameterOf returns the axis coordinate of the projection of p onto the
// object's line.
func (b Base[P, V]) ParameterOf(p P) float64 {
	return p.Sub(b.fixed).Dot(b.dir)
}

// Contains reports whether p lies on the object. p must be collinear with
// the axis and its coordinate must fall within Bounds (inclusive).
func (b Base[P, V]) Contains(p P) bool {
	d := p.Sub(b.fixed)
	if !d.IsParallel(b.dir) {
		return false
	}
	return b.bounds.Contains(d.Dot(b.dir))
}

// IntersectionWith returns the point shared by b and o, if there is exactly
// one. See IntersectionPoint.
func (b Base[P, V]) IntersectionWith(o Axial[P, V]) (P, bool) {
	return IntersectionPoint[P, V](b, o)
}

// DistanceTo returns the distance from p to the infinite line through b.
func (b Base[P, V]) DistanceTo(p P) float64 {
	return DistanceToPoint[P, V](b, p)
}

func (b Base[P, V]) IsParallelTo(o Axial[P, V]) bool {
	return LinesParallel[P, V](b, o)
}

func (b Base[P, V]) IsPerpendicularTo(o Axial[P, V]) bool {
	return LinesPerpendicular[P, V](b, o)
}

// AngleTo returns the angle between the directions of b and o, in [0, π/2].
func (b Base[P, V]) AngleTo(o Axial[P, V]) float64 {
	return LineAngle[P, V](b, o)
}
