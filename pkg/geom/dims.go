package geom

import "github.com/chazu/lineal/pkg/vec"

// Dimension-specific names for the generic line family.
type (
	Axial2    = Axial[vec.Point2, vec.Vector2]
	Axial3    = Axial[vec.Point3, vec.Vector3]
	LineLike2 = LineLike[vec.Point2, vec.Vector2]
	LineLike3 = LineLike[vec.Point3, vec.Vector3]
	Line2     = Line[vec.Point2, vec.Vector2]
	Line3     = Line[vec.Point3, vec.Vector3]
	HalfLine2 = HalfLine[vec.Point2, vec.Vector2]
	HalfLine3 = HalfLine[vec.Point3, vec.Vector3]
	Segment2  = Segment[vec.Point2, vec.Vector2]
	Segment3  = Segment[vec.Point3, vec.Vector3]
)

// Coordinate axes through the origin.
var (
	XAxis2 = Must(NewLine2(vec.Origin2, vec.UnitX2))
	YAxis2 = Must(NewLine2(vec.Origin2, vec.UnitY2))
	XAxis3 = Must(NewLine3(vec.Origin3, vec.UnitX3))
	YAxis3 = Must(NewLine3(vec.Origin3, vec.UnitY3))
	ZAxis3 = Must(NewLine3(vec.Origin3, vec.UnitZ3))
)

func NewLine2(p vec.Point2, d vec.Vector2) (Line2, error) { return NewLine(p, d) }

func NewLine3(p vec.Point3, d vec.Vector3) (Line3, error) { return NewLine(p, d) }

func NewLineThrough2(a, b vec.Point2) (Line2, error) {
	return NewLineThrough[vec.Point2, vec.Vector2](a, b)
}

func NewLineThrough3(a, b vec.Point3) (Line3, error) {
	return NewLineThrough[vec.Point3, vec.Vector3](a, b)
}

func NewHalfLine2(endpoint vec.Point2, d vec.Vector2) (HalfLine2, error) {
	return NewHalfLine(endpoint, d)
}

func NewHalfLine3(endpoint vec.Point3, d vec.Vector3) (HalfLine3, error) {
	return NewHalfLine(endpoint, d)
}

func NewHalfLineThrough2(endpoint, through vec.Point2) (HalfLine2, error) {
	return NewHalfLineThrough[vec.Point2, vec.Vector2](endpoint, through)
}

func NewHalfLineThrough3(endpoint, through vec.Point3) (HalfLine3, error) {
	return NewHalfLineThrough[vec.Point3, vec.Vector3](endpoint, through)
}

func NewSegment2(a, b vec.Point2) (Segment2, error) {
	return NewSegment[vec.Point2, vec.Vector2](a, b)
}

func NewSegment3(a, b vec.Point3) (Segment3, error) {
	return NewSegment[vec.Point3, vec.Vector3](a, b)
}
