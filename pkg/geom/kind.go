package geom

// Kind tags the variant of a line-like object.
type Kind int

const (
	KindLine     Kind = iota // unbounded in both directions
	KindHalfLine             // bounded below at the fixed point
	KindSegment              // bounded at both ends
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindHalfLine:
		return "half-line"
	case KindSegment:
		return "segment"
	default:
		return "unknown"
	}
}
