package geom

import "errors"

var (
	// ErrZeroDirection is returned when a line-like object is built from a
	// direction of approximately zero length, including a segment whose two
	// endpoints coincide.
	ErrZeroDirection = errors.New("direction has zero length")

	// ErrNotParallel is returned when the distance between two lines is
	// requested but the lines are not parallel.
	ErrNotParallel = errors.New("cannot compute distance between non-parallel lines")
)

// Must returns v, panicking if err is non-nil. It is meant for package-level
// values built from constants.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
