// Package tessellate turns the line-like entities of a scene into polylines
// suitable for plotting. One polyline is produced per entity; unbounded
// objects are clipped to a symmetric extent around their fixed point.
package tessellate

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/lineal/pkg/geom"
	"github.com/chazu/lineal/pkg/scene"
	"github.com/chazu/lineal/pkg/vec"
)

var ErrInvalidOptions = errors.New("invalid tessellation options")

// Options control sampling.
type Options struct {
	Precision  float64 // distance between consecutive vertices
	Extent     float64 // half-extent, in parameter units, for unbounded objects
	MaxSamples int     // per polyline, before the closing vertex; zero means no cap
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{Precision: 1, Extent: 10, MaxSamples: 1000}
}

func (o Options) validate() error {
	if !(o.Precision > 0) || math.IsInf(o.Precision, 0) {
		return fmt.Errorf("%w: precision %g", ErrInvalidOptions, o.Precision)
	}
	if !(o.Extent > 0) || math.IsInf(o.Extent, 0) {
		return fmt.Errorf("%w: extent %g", ErrInvalidOptions, o.Extent)
	}
	if o.MaxSamples < 0 {
		return fmt.Errorf("%w: max samples %d", ErrInvalidOptions, o.MaxSamples)
	}
	return nil
}

// Polyline is a flat list of vertex coordinates, Dim values per vertex.
type Polyline struct {
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Dim      int       `json:"dim"`
	Vertices []float64 `json:"vertices"`
}

// VertexCount returns the number of vertices.
func (p *Polyline) VertexCount() int {
	if p.Dim == 0 {
		return 0
	}
	return len(p.Vertices) / p.Dim
}

// IsEmpty reports whether the polyline has no vertices.
func (p *Polyline) IsEmpty() bool {
	return len(p.Vertices) == 0
}

// Vertex returns the coordinates of vertex i.
func (p *Polyline) Vertex(i int) []float64 {
	return p.Vertices[i*p.Dim : (i+1)*p.Dim]
}

// Tessellate samples every line-like entity of sc in scene order. Points and
// vectors are skipped. The scene is never mutated.
func Tessellate(sc *scene.Scene, opts Options) ([]*Polyline, error) {
	if sc == nil {
		return nil, nil
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var out []*Polyline
	for _, e := range sc.LineLikes() {
		var (
			verts []float64
			err   error
		)
		switch l := e.Shape.(type) {
		case geom.LineLike2:
			verts, err = walk[vec.Point2, vec.Vector2](l, opts)
		case geom.LineLike3:
			verts, err = walk[vec.Point3, vec.Vector3](l, opts)
		default:
			err = fmt.Errorf("unsupported shape type %T", e.Shape)
		}
		if err != nil {
			return nil, fmt.Errorf("tessellate: entity %s (%s): %w", e.Name, e.ID.Short(), err)
		}
		out = append(out, &Polyline{Name: e.Name, Kind: e.Kind.String(), Dim: e.Dim, Vertices: verts})
	}
	return out, nil
}

// walk clips l to its drawable parameter range and samples it from one end
// to the other. The far end is always the last vertex.
func walk[P vec.Point[P, V], V vec.Vector[V]](l geom.LineLike[P, V], opts Options) ([]float64, error) {
	b := l.Bounds()
	lo := math.Max(b.Start, -opts.Extent)
	hi := math.Min(b.End, opts.Extent)
	if s, ok := l.(geom.Segment[P, V]); ok {
		lo, hi = 0, s.Length()
	}

	clipped, err := geom.NewSegment[P, V](l.At(lo), l.At(hi))
	if err != nil {
		return nil, fmt.Errorf("clipping to [%g, %g]: %w", lo, hi, err)
	}

	var (
		verts []float64
		last  P
		n     int
	)
	for p := range clipped.Sample(opts.Precision) {
		if opts.MaxSamples > 0 && n == opts.MaxSamples {
			break
		}
		verts = append(verts, p.Components()...)
		last = p
		n++
	}
	if n == 0 || !last.ApproxEqual(clipped.End()) {
		verts = append(verts, clipped.End().Components()...)
	}
	return verts, nil
}
