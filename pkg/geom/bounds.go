package geom

import (
	"fmt"
	"math"

	"github.com/chazu/lineal/pkg/vec"
)

// Bounds is the closed interval [Start, End] of axis coordinates that
// belong to a line-like object. Infinite values denote an unbounded end.
type Bounds struct {
	Start, End float64
}

// Unbounded is the interval of an infinite line.
var Unbounded = Bounds{Start: math.Inf(-1), End: math.Inf(1)}

// Contains reports whether t lies in [Start, End], widened by vec.Epsilon
// at both ends.
func (b Bounds) Contains(t float64) bool {
	return t >= b.Start-vec.Epsilon && t <= b.End+vec.Epsilon
}

// IsBounded reports whether both ends are finite.
func (b Bounds) IsBounded() bool {
	return !math.IsInf(b.Start, 0) && !math.IsInf(b.End, 0)
}

// Length returns End - Start, which is +Inf for an unbounded interval.
func (b Bounds) Length() float64 {
	return b.End - b.Start
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g]", b.Start, b.End)
}
