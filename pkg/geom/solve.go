package geom

import (
	"gonum.org/v1/gonum/mat"
)

// solveAxes solves the n×2 system [d1 -d2]·(x, y) = rhs. For n > 2 the
// least-squares solution is returned; callers must verify it. ok is false
// when the system is singular or too ill-conditioned to trust.
func solveAxes(d1, d2, rhs []float64) (x, y float64, ok bool) {
	n := len(rhs)
	a := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		a.Set(i, 0, d1[i])
		a.Set(i, 1, -d2[i])
	}

	var s mat.VecDense
	if err := s.SolveVec(a, mat.NewVecDense(n, rhs)); err != nil {
		return 0, 0, false
	}
	return s.AtVec(0), s.AtVec(1), true
}
