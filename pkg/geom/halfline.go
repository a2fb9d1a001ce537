package geom

import (
	"fmt"
	"iter"
	"math"

	"github.com/chazu/lineal/pkg/vec"
)

// HalfLine is a ray starting at its fixed point.
type HalfLine[P vec.Point[P, V], V vec.Vector[V]] struct {
	Base[P, V]
	line Line[P, V]
}

// NewHalfLine returns the half-line starting at endpoint and pointing
// along d.
func NewHalfLine[P vec.Point[P, V], V vec.Vector[V]](endpoint P, d V) (HalfLine[P, V], error) {
	b, err := newBase(endpoint, d, Bounds{Start: 0, End: math.Inf(1)})
	if err != nil {
		return HalfLine[P, V]{}, fmt.Errorf("half-line: %w", err)
	}
	return HalfLine[P, V]{
		Base: b,
		line: Line[P, V]{Base: Base[P, V]{fixed: b.fixed, dir: b.dir, bounds: Unbounded}},
	}, nil
}

// NewHalfLineThrough returns the half-line starting at endpoint and passing
// through the point through.
func NewHalfLineThrough[P vec.Point[P, V], V vec.Vector[V]](endpoint, through P) (HalfLine[P, V], error) {
	return NewHalfLine(endpoint, through.Sub(endpoint))
}

func (HalfLine[P, V]) Kind() Kind { return KindHalfLine }

// Endpoint returns the point where the half-line starts.
func (h HalfLine[P, V]) Endpoint() P { return h.fixed }

// CorrespondingLine returns the infinite line that contains h.
func (h HalfLine[P, V]) CorrespondingLine() Line[P, V] { return h.line }

// Equal reports whether h and o start at the same point and point the same
// way.
func (h HalfLine[P, V]) Equal(o HalfLine[P, V]) bool {
	return h.dir.ApproxEqual(o.dir) && h.fixed.ApproxEqual(o.fixed)
}

// Sample yields the points at t = 0, precision, 2*precision, ... forever.
func (h HalfLine[P, V]) Sample(precision float64) iter.Seq[P] {
	return func(yield func(P) bool) {
		if !validPrecision(precision) {
			return
		}
		for i := 0; ; i++ {
			if !yield(h.At(float64(i) * precision)) {
				return
			}
		}
	}
}

func (h HalfLine[P, V]) String() string {
	return fmt.Sprintf("half-line from %s along %s", h.fixed, h.dir)
}

func (HalfLine[P, V]) lineLike() {}
