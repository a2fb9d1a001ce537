package geom

import (
	"iter"
	"math"
)

func validPrecision(precision float64) bool {
	return precision > 0 && !math.IsNaN(precision) && !math.IsInf(precision, 0)
}

// Take collects at most n values from seq. It is the way to consume the
// infinite samples of a Line or HalfLine.
func Take[T any](seq iter.Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, min(n, 1024))
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
