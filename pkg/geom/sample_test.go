package geom

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/lineal/pkg/vec"
)

func TestSegmentSampleInclusive(t *testing.T) {
	s := Must(NewSegment2(p2(0, 0), p2(10, 0)))
	pts := slices.Collect(s.Sample(1))
	require.Len(t, pts, 11)
	for i, p := range pts {
		assert.True(t, p.ApproxEqual(p2(float64(i), 0)), "point %d = %s", i, p)
		assert.True(t, s.Contains(p))
	}
}

func TestSegmentSampleDoesNotForceEnd(t *testing.T) {
	s := Must(NewSegment3(p3(0, 0, 0), p3(0, 0, 2.5)))
	pts := slices.Collect(s.Sample(1))
	require.Len(t, pts, 3)
	assert.True(t, pts[2].ApproxEqual(p3(0, 0, 2)))
	assert.False(t, pts[len(pts)-1].ApproxEqual(s.End()))
}

func TestSegmentSampleRestarts(t *testing.T) {
	s := Must(NewSegment2(p2(0, 0), p2(0, 1)))
	seq := s.Sample(0.25)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Len(t, first, 5)
	assert.Equal(t, first, second)
}

func TestHalfLineSample(t *testing.T) {
	h := Must(NewHalfLine2(p2(1, 1), vec.NewVector2(0, 2)))
	pts := Take(h.Sample(0.5), 100)
	require.Len(t, pts, 100)

	prev := -1.0
	for i, p := range pts {
		tt := h.ParameterOf(p)
		assert.Greater(t, tt, prev, "parameter must increase at %d", i)
		assert.InDelta(t, 0.5*float64(i), tt, vec.Epsilon)
		assert.True(t, h.Contains(p))
		prev = tt
	}
}

func TestLineSample(t *testing.T) {
	l := Must(NewLine3(p3(0, 0, 0), vec.UnitY3))
	pts := Take(l.Sample(2), 9)
	require.Len(t, pts, 9)

	want := []float64{0, 2, -2, 4, -4, 6, -6, 8, -8}
	prevAbs := -1.0
	for i, p := range pts {
		tt := l.ParameterOf(p)
		assert.InDelta(t, want[i], tt, vec.Epsilon)
		assert.GreaterOrEqual(t, math.Abs(tt), prevAbs)
		assert.True(t, l.Contains(p))
		prevAbs = math.Abs(tt)
	}
}

func TestSampleIndependentIterators(t *testing.T) {
	seq := XAxis2.Sample(1)
	a := Take(seq, 3)
	b := Take(seq, 5)
	assert.Equal(t, a, b[:3])
}

func TestSampleInvalidPrecision(t *testing.T) {
	s := Must(NewSegment2(p2(0, 0), p2(1, 0)))
	for _, p := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.Empty(t, slices.Collect(s.Sample(p)))
		assert.Empty(t, Take(XAxis2.Sample(p), 10))
		assert.Empty(t, Take(Must(NewHalfLine2(p2(0, 0), vec.UnitX2)).Sample(p), 10))
	}
}

func TestTake(t *testing.T) {
	assert.Nil(t, Take(XAxis2.Sample(1), 0))
	s := Must(NewSegment2(p2(0, 0), p2(2, 0)))
	assert.Len(t, Take(s.Sample(1), 50), 3)
}
