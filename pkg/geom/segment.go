package geom

import (
	"fmt"
	"iter"

	"github.com/chazu/lineal/pkg/vec"
)

// Segment is the bounded piece of a line between two endpoints. Its fixed
// point is the start and its bounds are [0, Length].
type Segment[P vec.Point[P, V], V vec.Vector[V]] struct {
	Base[P, V]
	end    P
	length float64
	line   Line[P, V]
}

// NewSegment returns the segment from a to b. It fails with
// ErrZeroDirection when a and b coincide.
func NewSegment[P vec.Point[P, V], V vec.Vector[V]](a, b P) (Segment[P, V], error) {
	length := a.DistanceTo(b)
	base, err := newBase(a, b.Sub(a), Bounds{Start: 0, End: length})
	if err != nil {
		return Segment[P, V]{}, fmt.Errorf("segment %s-%s: %w", a, b, err)
	}
	return newSegment(base, length), nil
}

func newSegment[P vec.Point[P, V], V vec.Vector[V]](base Base[P, V], length float64) Segment[P, V] {
	return Segment[P, V]{
		Base:   base,
		end:    base.At(length),
		length: length,
		line:   Line[P, V]{Base: Base[P, V]{fixed: base.fixed, dir: base.dir, bounds: Unbounded}},
	}
}

func (Segment[P, V]) Kind() Kind { return KindSegment }

// Start returns the first endpoint, which is also the fixed point.
func (s Segment[P, V]) Start() P { return s.fixed }

// End returns FixedPoint + Direction*Length.
func (s Segment[P, V]) End() P { return s.end }

func (s Segment[P, V]) Length() float64 { return s.length }

func (s Segment[P, V]) Midpoint() P { return s.At(s.length / 2) }

// Reversed returns the segment with its endpoints swapped. It is Equal to s.
func (s Segment[P, V]) Reversed() Segment[P, V] {
	base := Base[P, V]{fixed: s.end, dir: s.dir.Neg(), bounds: s.bounds}
	return newSegment(base, s.length)
}

// CorrespondingLine returns the infinite line that contains s.
func (s Segment[P, V]) CorrespondingLine() Line[P, V] { return s.line }

// Equal reports whether s and o have the same endpoints in either order.
func (s Segment[P, V]) Equal(o Segment[P, V]) bool {
	if s.fixed.ApproxEqual(o.fixed) && s.end.ApproxEqual(o.end) {
		return true
	}
	return s.fixed.ApproxEqual(o.end) && s.end.ApproxEqual(o.fixed)
}

// Sample yields the points at t = 0, precision, 2*precision, ... while t
// does not pass Length. t is accumulated step by step, so End itself is
// only produced when the steps land on it within vec.Epsilon.
func (s Segment[P, V]) Sample(precision float64) iter.Seq[P] {
	return func(yield func(P) bool) {
		if !validPrecision(precision) {
			return
		}
		for t := 0.0; t <= s.length+vec.Epsilon; t += precision {
			if !yield(s.At(t)) {
				return
			}
		}
	}
}

func (s Segment[P, V]) String() string {
	return fmt.Sprintf("segment %s-%s", s.fixed, s.end)
}

func (Segment[P, V]) lineLike() {}
