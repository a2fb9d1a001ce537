package geom

import (
	"fmt"
	"math"

	"github.com/chazu/lineal/pkg/vec"
)

// AreParallel reports whether a and b are parallel. In 2D this is the
// determinant test x1*y2 ≈ y1*x2, in 3D the cross product test. A zero
// vector is parallel to every vector.
func AreParallel[V vec.Vector[V]](a, b V) bool {
	return a.IsParallel(b)
}

// ArePerpendicular reports whether a·b ≈ 0. A zero vector is perpendicular
// to every vector.
func ArePerpendicular[V vec.Vector[V]](a, b V) bool {
	return a.IsPerpendicular(b)
}

// IncludedAngle returns the angle between a and b in radians, in [0, π].
// It returns NaN when either vector has zero length; the angle is then
// undefined.
func IncludedAngle[V vec.Vector[V]](a, b V) float64 {
	la, lb := a.Length(), b.Length()
	if vec.IsZero(la) || vec.IsZero(lb) {
		return math.NaN()
	}
	return math.Acos(clampUnit(a.Dot(b) / (la * lb)))
}

// LinesParallel reports whether the directions of l1 and l2 are parallel.
func LinesParallel[P vec.Point[P, V], V vec.Vector[V]](l1, l2 Axial[P, V]) bool {
	return l1.Direction().IsParallel(l2.Direction())
}

// LinesPerpendicular reports whether the directions of l1 and l2 are
// perpendicular. The objects need not intersect.
func LinesPerpendicular[P vec.Point[P, V], V vec.Vector[V]](l1, l2 Axial[P, V]) bool {
	return l1.Direction().IsPerpendicular(l2.Direction())
}

// LineAngle returns the angle between the lines carrying l1 and l2. The
// sign of a line's direction is arbitrary, so the result is in [0, π/2].
func LineAngle[P vec.Point[P, V], V vec.Vector[V]](l1, l2 Axial[P, V]) float64 {
	return math.Acos(clampUnit(math.Abs(l1.Direction().Dot(l2.Direction()))))
}

// DistanceToPoint returns the perpendicular distance from p to the infinite
// line carrying l, sqrt(|FP|² - (FP·d)²). The bounds of l are ignored.
func DistanceToPoint[P vec.Point[P, V], V vec.Vector[V]](l Axial[P, V], p P) float64 {
	fp := p.Sub(l.FixedPoint())
	proj := fp.Dot(l.Direction())
	sq := fp.Dot(fp) - proj*proj
	if sq < 0 {
		return 0
	}
	return math.Sqrt(sq)
}

// DistanceBetween returns the distance between the infinite lines carrying
// l1 and l2. It is only defined for parallel lines and returns
// ErrNotParallel otherwise.
func DistanceBetween[P vec.Point[P, V], V vec.Vector[V]](l1, l2 Axial[P, V]) (float64, error) {
	if !LinesParallel(l1, l2) {
		return 0, fmt.Errorf("directions %s and %s: %w", l1.Direction(), l2.Direction(), ErrNotParallel)
	}
	return DistanceToPoint(l1, l2.FixedPoint()), nil
}

// IntersectionPoint returns the single point shared by l1 and l2.
//
// It solves x*d1 - y*d2 = Q - P for the axis coordinates x and y and checks
// that R = P + x*d1 is contained in both objects under their own bounds.
// ok is false when the objects are parallel or coincident, when the system
// cannot be solved, when the lines are skew (3D) and when the crossing lies
// outside either object's bounds. These cases are not distinguished.
func IntersectionPoint[P vec.Point[P, V], V vec.Vector[V]](l1, l2 Axial[P, V]) (p P, ok bool) {
	d1, d2 := l1.Direction(), l2.Direction()
	if d1.IsParallel(d2) {
		return p, false
	}

	rhs := l2.FixedPoint().Sub(l1.FixedPoint())
	x, _, ok := solveAxes(d1.Components(), d2.Components(), rhs.Components())
	if !ok {
		return p, false
	}

	r := l1.FixedPoint().Translate(d1.Scale(x))
	if !l1.Contains(r) || !l2.Contains(r) {
		return p, false
	}
	return r, true
}

func clampUnit(c float64) float64 {
	return math.Max(-1, math.Min(1, c))
}
