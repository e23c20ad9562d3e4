package BiLaplacian

import (
	"github.com/dgfem/biharm/DGQ"
)

// ExactSolution is the closed interface for a manufactured solution: the
// three operations the error evaluator needs, selected once at setup.
type ExactSolution interface {
	Value(p DGQ.Point) float64
	Gradient(p DGQ.Point) DGQ.Vec
	Hessian(p DGQ.Point) DGQ.Tensor
}

// ManufacturedSolution is u(x) = prod_d (x_d (1 - x_d))^2, which vanishes
// together with its normal gradient on the boundary of the unit
// square/cube. Its biharmonic image is returned by RightHandSide.
type ManufacturedSolution struct {
	Dim int
}

// a2 is (x(1-x))^2, b its first derivative, c its second derivative.
func a2(x float64) float64 { t := x * (1. - x); return t * t }
func b(x float64) float64  { return 2.*x - 6.*x*x + 4.*x*x*x }
func c(x float64) float64  { return 2. - 12.*x + 12.*x*x }

func (ms ManufacturedSolution) Value(p DGQ.Point) (val float64) {
	val = 1
	for d := 0; d < ms.Dim; d++ {
		val *= a2(p[d])
	}
	return
}

func (ms ManufacturedSolution) Gradient(p DGQ.Point) (grad DGQ.Vec) {
	for d := 0; d < ms.Dim; d++ {
		g := b(p[d])
		for e := 0; e < ms.Dim; e++ {
			if e != d {
				g *= a2(p[e])
			}
		}
		grad[d] = g
	}
	return
}

func (ms ManufacturedSolution) Hessian(p DGQ.Point) (hess DGQ.Tensor) {
	for d := 0; d < ms.Dim; d++ {
		for e := 0; e < ms.Dim; e++ {
			var h float64
			if d == e {
				h = c(p[d])
			} else {
				h = b(p[d]) * b(p[e])
			}
			for f := 0; f < ms.Dim; f++ {
				if f != d && f != e {
					h *= a2(p[f])
				}
			}
			hess[d][e] = h
		}
	}
	return
}

// RightHandSide returns f = Laplacian^2 of the manufactured solution.
func RightHandSide(dim int) func(p DGQ.Point) float64 {
	if dim == 2 {
		return func(p DGQ.Point) float64 {
			return 24.*a2(p[1]) + 24.*a2(p[0]) +
				2.*c(p[0])*c(p[1])
		}
	}
	return func(p DGQ.Point) float64 {
		return 24.*a2(p[1])*a2(p[2]) +
			24.*a2(p[0])*a2(p[2]) +
			24.*a2(p[0])*a2(p[1]) +
			2.*c(p[0])*c(p[1])*a2(p[2]) +
			2.*c(p[0])*c(p[2])*a2(p[1]) +
			2.*c(p[1])*c(p[2])*a2(p[0])
	}
}
