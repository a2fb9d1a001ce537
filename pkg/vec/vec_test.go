package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 1, 1, true},
		{"within epsilon", 1, 1 + Epsilon/2, true},
		{"outside epsilon", 1, 1 + 2*Epsilon, false},
		{"negative", -3, -3.000001, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApproxEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("ApproxEqual(%g, %g) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVector2Arithmetic(t *testing.T) {
	a := NewVector2(1, 2)
	b := NewVector2(3, -1)

	assert.True(t, a.Add(b).ApproxEqual(NewVector2(4, 1)))
	assert.True(t, a.Sub(b).ApproxEqual(NewVector2(-2, 3)))
	assert.True(t, a.Scale(2).ApproxEqual(NewVector2(2, 4)))
	assert.True(t, a.Div(2).ApproxEqual(NewVector2(0.5, 1)))
	assert.True(t, a.Neg().ApproxEqual(NewVector2(-1, -2)))
	assert.InDelta(t, 1.0, a.Dot(b), Epsilon)
	assert.InDelta(t, -7.0, a.Cross(b), Epsilon)
	assert.InDelta(t, math.Sqrt(5), a.Length(), Epsilon)
}

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 0, 0)
	b := NewVector3(0, 1, 0)

	assert.True(t, a.Cross(b).ApproxEqual(UnitZ3))
	assert.True(t, b.Cross(a).ApproxEqual(UnitZ3.Neg()))
	assert.InDelta(t, 0.0, a.Dot(b), Epsilon)
	assert.True(t, a.Add(b).Scale(3).ApproxEqual(NewVector3(3, 3, 0)))
	assert.InDelta(t, math.Sqrt(2), a.Sub(b).Length(), Epsilon)
}

func TestNormalize(t *testing.T) {
	u, err := NewVector2(3, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u.Length(), Epsilon)
	assert.True(t, u.ApproxEqual(NewVector2(0.6, 0.8)))

	w, err := NewVector3(0, 0, -7).Normalize()
	require.NoError(t, err)
	assert.True(t, w.ApproxEqual(UnitZ3.Neg()))

	_, err = Zero2.Normalize()
	assert.ErrorIs(t, err, ErrZeroLength)

	_, err = NewVector3(1e-7, 0, 0).Normalize()
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestParallelPerpendicular(t *testing.T) {
	tests := []struct {
		name          string
		a, b          Vector2
		parallel      bool
		perpendicular bool
	}{
		{"same", NewVector2(1, 2), NewVector2(1, 2), true, false},
		{"opposite", NewVector2(1, 2), NewVector2(-2, -4), true, false},
		{"axes", UnitX2, UnitY2, false, true},
		{"zero with anything", Zero2, NewVector2(5, 1), true, true},
		{"oblique", NewVector2(1, 1), NewVector2(1, 0), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.parallel, tt.a.IsParallel(tt.b))
			assert.Equal(t, tt.perpendicular, tt.a.IsPerpendicular(tt.b))
		})
	}

	assert.True(t, NewVector3(1, 2, 3).IsParallel(NewVector3(2, 4, 6)))
	assert.False(t, UnitX3.IsParallel(UnitY3))
	assert.True(t, UnitX3.IsPerpendicular(UnitZ3))
}

func TestFromSlice(t *testing.T) {
	v, err := NewVector2FromSlice([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, NewVector2(1, 2), v)

	_, err = NewVector2FromSlice([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrArity)

	w, err := NewVector3FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, NewVector3(1, 2, 3), w)

	_, err = NewVector3FromSlice(nil)
	assert.ErrorIs(t, err, ErrArity)

	p, err := NewPoint2FromSlice([]float64{4, 5})
	require.NoError(t, err)
	assert.Equal(t, Point2{X: 4, Y: 5}, p)

	_, err = NewPoint2FromSlice([]float64{4})
	assert.ErrorIs(t, err, ErrArity)

	q, err := NewPoint3FromSlice([]float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, Point3{X: 4, Y: 5, Z: 6}, q)

	_, err = NewPoint3FromSlice([]float64{4, 5})
	assert.ErrorIs(t, err, ErrArity)
}

func TestPoints(t *testing.T) {
	p := Point2{X: 1, Y: 1}
	q := Point2{X: 4, Y: 5}

	assert.True(t, q.Sub(p).ApproxEqual(NewVector2(3, 4)))
	assert.True(t, p.VectorTo(q).ApproxEqual(NewVector2(3, 4)))
	assert.InDelta(t, 5.0, p.DistanceTo(q), Epsilon)
	assert.True(t, p.Translate(NewVector2(3, 4)).ApproxEqual(q))
	assert.False(t, p.ApproxEqual(q))
	assert.Equal(t, "(1, 1)", p.String())

	r := Point3{X: 1, Y: 2, Z: 3}
	assert.True(t, r.Translate(UnitZ3).ApproxEqual(Point3{X: 1, Y: 2, Z: 4}))
	assert.InDelta(t, 1.0, r.DistanceTo(Point3{X: 1, Y: 2, Z: 2}), Epsilon)
	assert.True(t, r.ApproxEqual(Point3{X: 1, Y: 2, Z: 3 + Epsilon/10}))
}
