package geom

import (
	"iter"

	"github.com/cespare/xxhash/v2"

	"github.com/chazu/lineal/pkg/vec"
)

// LineLike is the closed set {Line, HalfLine, Segment}.
type LineLike[P vec.Point[P, V], V vec.Vector[V]] interface {
	Axial[P, V]

	Kind() Kind
	At(t float64) P
	ParameterOf(p P) float64
	CorrespondingLine() Line[P, V]
	Sample(precision float64) iter.Seq[P]
	IntersectionWith(o Axial[P, V]) (P, bool)
	DistanceTo(p P) float64
	String() string

	lineLike() // marker method restricting implementations to this package
}

// Equal reports whether a and b describe the same set of points. Objects of
// different kinds are never equal.
func Equal[P vec.Point[P, V], V vec.Vector[V]](a, b LineLike[P, V]) bool {
	switch x := a.(type) {
	case Line[P, V]:
		y, ok := b.(Line[P, V])
		return ok && x.Equal(y)
	case HalfLine[P, V]:
		y, ok := b.(HalfLine[P, V])
		return ok && x.Equal(y)
	case Segment[P, V]:
		y, ok := b.(Segment[P, V])
		return ok && x.Equal(y)
	}
	return false
}

// Hash returns a hash of l that is consistent with Equal: objects that are
// equal within tolerance always hash identically. Coordinates are left out
// because no rounding of them survives the tolerance, so the hash only
// separates kinds and dimensions.
func Hash[P vec.Point[P, V], V vec.Vector[V]](l LineLike[P, V]) uint64 {
	key := [2]byte{byte(l.Kind()), byte(len(l.Direction().Components()))}
	return xxhash.Sum64(key[:])
}
