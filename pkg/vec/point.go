package vec

import "fmt"

// Point2 is an immutable 2D position.
type Point2 struct {
	X, Y float64
}

// Point3 is an immutable 3D position.
type Point3 struct {
	X, Y, Z float64
}

var (
	Origin2 = Point2{}
	Origin3 = Point3{}
)

// NewPoint2FromSlice builds a point from exactly two coordinates.
func NewPoint2FromSlice(xs []float64) (Point2, error) {
	if len(xs) != 2 {
		return Point2{}, fmt.Errorf("point2: got %d values: %w", len(xs), ErrArity)
	}
	return Point2{X: xs[0], Y: xs[1]}, nil
}

// NewPoint3FromSlice builds a point from exactly three coordinates.
func NewPoint3FromSlice(xs []float64) (Point3, error) {
	if len(xs) != 3 {
		return Point3{}, fmt.Errorf("point3: got %d values: %w", len(xs), ErrArity)
	}
	return Point3{X: xs[0], Y: xs[1], Z: xs[2]}, nil
}

// ToVector returns the position vector of p.
func (p Point2) ToVector() Vector2 { return Vector2{X: p.X, Y: p.Y} }

// Sub returns the vector from q to p.
func (p Point2) Sub(q Point2) Vector2 { return p.ToVector().Sub(q.ToVector()) }

// VectorTo returns the vector from p to q.
func (p Point2) VectorTo(q Point2) Vector2 { return q.Sub(p) }

// Translate returns p moved by v.
func (p Point2) Translate(v Vector2) Point2 {
	w := p.ToVector().Add(v)
	return Point2{X: w.X, Y: w.Y}
}

func (p Point2) DistanceTo(q Point2) float64 { return p.Sub(q).Length() }

func (p Point2) ApproxEqual(q Point2) bool {
	return ApproxEqual(p.X, q.X) && ApproxEqual(p.Y, q.Y)
}

func (p Point2) Components() []float64 { return []float64{p.X, p.Y} }

func (p Point2) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// ToVector returns the position vector of p.
func (p Point3) ToVector() Vector3 { return Vector3{X: p.X, Y: p.Y, Z: p.Z} }

// Sub returns the vector from q to p.
func (p Point3) Sub(q Point3) Vector3 { return p.ToVector().Sub(q.ToVector()) }

// VectorTo returns the vector from p to q.
func (p Point3) VectorTo(q Point3) Vector3 { return q.Sub(p) }

// Translate returns p moved by v.
func (p Point3) Translate(v Vector3) Point3 {
	w := p.ToVector().Add(v)
	return Point3{X: w.X, Y: w.Y, Z: w.Z}
}

func (p Point3) DistanceTo(q Point3) float64 { return p.Sub(q).Length() }

func (p Point3) ApproxEqual(q Point3) bool {
	return ApproxEqual(p.X, q.X) && ApproxEqual(p.Y, q.Y) && ApproxEqual(p.Z, q.Z)
}

func (p Point3) Components() []float64 { return []float64{p.X, p.Y, p.Z} }

func (p Point3) String() string { return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z) }
