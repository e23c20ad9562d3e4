package utils

import (
	"fmt"
	"math"
)

// ConjugateGradient solves A*x = b for a symmetric positive definite A.
// Iteration stops when the residual norm drops below tolerance (measured
// against the right hand side norm when that is larger than one). Exhausting
// maxIterations returns an error; callers treat that as fatal since the
// local systems fed to this solver are SPD by construction.
func ConjugateGradient(A Matrix, b Vector, maxIterations int, tolerance float64) (x Vector, err error) {
	var (
		n     = b.Len()
		bNorm = b.Norm()
	)
	if nr, nc := A.Dims(); nr != nc || nr != n {
		err = fmt.Errorf("conjugate gradient needs a square system: A is %dx%d, b has %d entries", nr, nc, n)
		return
	}
	x = NewVector(n)
	target := tolerance * math.Max(1, bNorm)
	if bNorm <= target {
		return
	}
	r := b.Copy()
	p := r.Copy()
	rsOld := r.Dot(r)
	for iter := 0; iter < maxIterations; iter++ {
		Ap := A.MulVec(p)
		alpha := rsOld / p.Dot(Ap)
		for i := 0; i < n; i++ {
			x.DataP[i] += alpha * p.DataP[i]
			r.DataP[i] -= alpha * Ap.DataP[i]
		}
		rsNew := r.Dot(r)
		if math.Sqrt(rsNew) <= target {
			return
		}
		beta := rsNew / rsOld
		for i := 0; i < n; i++ {
			p.DataP[i] = r.DataP[i] + beta*p.DataP[i]
		}
		rsOld = rsNew
	}
	err = fmt.Errorf("conjugate gradient failed to converge within %d iterations: residual = %v, target = %v",
		maxIterations, math.Sqrt(rsOld), target)
	return
}
