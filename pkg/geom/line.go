package geom

import (
	"fmt"
	"iter"

	"github.com/chazu/lineal/pkg/vec"
)

// Line is an infinite line.
type Line[P vec.Point[P, V], V vec.Vector[V]] struct {
	Base[P, V]
}

// NewLine returns the line through p with direction d.
func NewLine[P vec.Point[P, V], V vec.Vector[V]](p P, d V) (Line[P, V], error) {
	b, err := newBase(p, d, Unbounded)
	if err != nil {
		return Line[P, V]{}, fmt.Errorf("line: %w", err)
	}
	return Line[P, V]{Base: b}, nil
}

// NewLineThrough returns the line through a and b, directed from a to b.
func NewLineThrough[P vec.Point[P, V], V vec.Vector[V]](a, b P) (Line[P, V], error) {
	return NewLine(a, b.Sub(a))
}

func (Line[P, V]) Kind() Kind { return KindLine }

// CorrespondingLine returns l itself.
func (l Line[P, V]) CorrespondingLine() Line[P, V] { return l }

// Equal reports whether l and o are parallel and share a point.
func (l Line[P, V]) Equal(o Line[P, V]) bool {
	return l.dir.IsParallel(o.dir) && o.Contains(l.fixed)
}

// Sample yields the fixed point and then alternates outwards in both
// directions: +precision, -precision, +2*precision, -2*precision, ...
// The sequence is infinite.
func (l Line[P, V]) Sample(precision float64) iter.Seq[P] {
	return func(yield func(P) bool) {
		if !validPrecision(precision) {
			return
		}
		if !yield(l.fixed) {
			return
		}
		for i := 1; ; i++ {
			t := float64(i) * precision
			if !yield(l.At(t)) || !yield(l.At(-t)) {
				return
			}
		}
	}
}

func (l Line[P, V]) String() string {
	return fmt.Sprintf("line through %s along %s", l.fixed, l.dir)
}

func (Line[P, V]) lineLike() {}
