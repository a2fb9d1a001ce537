// Package geom implements the line family: infinite lines, half-lines and
// segments in 2D and 3D, all represented as a fixed point, a unit
// direction and an interval on the number axis anchored at the fixed
// point. It also provides the relational queries built on that model
// (containment, parallelism, perpendicularity, included angle, distance,
// intersection) and lazy point sampling along each object.
//
// Every type is an immutable value and safe for concurrent use. The
// variants form a closed set: LineLike is implemented only by Line,
// HalfLine and Segment, and code that needs variant-specific behavior
// switches on the concrete type.
package geom
