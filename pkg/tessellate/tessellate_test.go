package tessellate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/lineal/pkg/geom"
	"github.com/chazu/lineal/pkg/scene"
	"github.com/chazu/lineal/pkg/tessellate"
	"github.com/chazu/lineal/pkg/vec"
)

// sceneOf builds a scene holding the given shapes, named in order.
func sceneOf(t *testing.T, named ...any) *scene.Scene {
	t.Helper()
	sc := scene.New()
	for i := 0; i < len(named); i += 2 {
		e, err := scene.NewEntity(named[i].(string), named[i+1])
		require.NoError(t, err)
		require.NoError(t, sc.Add(e))
	}
	return sc
}

func TestNilScene(t *testing.T) {
	lines, err := tessellate.Tessellate(nil, tessellate.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines != nil {
		t.Errorf("expected nil polylines, got %d", len(lines))
	}
}

func TestSegmentPolyline(t *testing.T) {
	seg, err := geom.NewSegment2(vec.Point2{X: 0, Y: 0}, vec.Point2{X: 4, Y: 0})
	require.NoError(t, err)
	sc := sceneOf(t, "edge", seg, "corner", vec.Point2{X: 1, Y: 1})

	lines, err := tessellate.Tessellate(sc, tessellate.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, lines, 1, "points are not tessellated")

	pl := lines[0]
	assert.Equal(t, "edge", pl.Name)
	assert.Equal(t, "segment", pl.Kind)
	assert.Equal(t, 2, pl.Dim)
	assert.Equal(t, 5, pl.VertexCount())
	assert.InDeltaSlice(t, []float64{4, 0}, pl.Vertex(4), vec.Epsilon)
}

func TestSegmentEndIsClosed(t *testing.T) {
	// 2.5 / 1 leaves a remainder; the far end is appended.
	seg, err := geom.NewSegment3(vec.Point3{}, vec.Point3{Z: 2.5})
	require.NoError(t, err)

	lines, err := tessellate.Tessellate(sceneOf(t, "s", seg), tessellate.DefaultOptions())
	require.NoError(t, err)
	pl := lines[0]
	assert.Equal(t, 4, pl.VertexCount())
	assert.InDeltaSlice(t, []float64{0, 0, 2.5}, pl.Vertex(3), vec.Epsilon)
}

func TestUnboundedObjectsAreClipped(t *testing.T) {
	opts := tessellate.Options{Precision: 1, Extent: 3}

	lines, err := tessellate.Tessellate(sceneOf(t,
		"x", geom.XAxis2,
		"ray", geom.Must(geom.NewHalfLine3(vec.Point3{X: 1}, vec.UnitY3)),
	), opts)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	line := lines[0]
	assert.Equal(t, 7, line.VertexCount())
	assert.InDeltaSlice(t, []float64{-3, 0}, line.Vertex(0), vec.Epsilon)
	assert.InDeltaSlice(t, []float64{3, 0}, line.Vertex(6), vec.Epsilon)

	ray := lines[1]
	assert.Equal(t, "half-line", ray.Kind)
	assert.Equal(t, 4, ray.VertexCount())
	assert.InDeltaSlice(t, []float64{1, 0, 0}, ray.Vertex(0), vec.Epsilon)
	assert.InDeltaSlice(t, []float64{1, 3, 0}, ray.Vertex(3), vec.Epsilon)
}

func TestMaxSamples(t *testing.T) {
	opts := tessellate.Options{Precision: 0.1, Extent: 100, MaxSamples: 10}
	lines, err := tessellate.Tessellate(sceneOf(t, "x", geom.XAxis2), opts)
	require.NoError(t, err)
	pl := lines[0]
	assert.Equal(t, 11, pl.VertexCount())
	assert.InDeltaSlice(t, []float64{100, 0}, pl.Vertex(10), vec.Epsilon)
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts tessellate.Options
	}{
		{"zero precision", tessellate.Options{Precision: 0, Extent: 1}},
		{"negative extent", tessellate.Options{Precision: 1, Extent: -1}},
		{"negative max samples", tessellate.Options{Precision: 1, Extent: 1, MaxSamples: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tessellate.Tessellate(scene.New(), tt.opts)
			if !errors.Is(err, tessellate.ErrInvalidOptions) {
				t.Errorf("expected ErrInvalidOptions, got %v", err)
			}
		})
	}
}

func TestEmptyPolyline(t *testing.T) {
	var pl tessellate.Polyline
	if !pl.IsEmpty() {
		t.Error("zero polyline should be empty")
	}
	if pl.VertexCount() != 0 {
		t.Errorf("vertex count = %d, want 0", pl.VertexCount())
	}
}
