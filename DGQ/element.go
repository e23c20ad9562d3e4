package DGQ

import (
	"fmt"
)

// ScalarElement is the discontinuous tensor-product Lagrange element Q_N on
// the reference cell [-1,1]^Dim. Local dofs are numbered lexicographically
// over the per-axis node indices, first axis fastest.
type ScalarElement struct {
	Dim, N, Np int
	R          []float64 // 1D Gauss-Lobatto nodes
	basis      *Lagrange1D
}

func NewScalarElement(dim, N int) (el *ScalarElement, err error) {
	if dim != 2 && dim != 3 {
		err = fmt.Errorf("spatial dimension must be 2 or 3, got %d", dim)
		return
	}
	if N < 1 {
		err = fmt.Errorf("polynomial degree must be at least 1, got %d", N)
		return
	}
	np := 1
	for d := 0; d < dim; d++ {
		np *= N + 1
	}
	r := JacobiGL(0, 0, N)
	el = &ScalarElement{
		Dim:   dim,
		N:     N,
		Np:    np,
		R:     r,
		basis: NewLagrange1D(r),
	}
	return
}

// TensorIndex splits local dof i into its per-axis node indices.
func (el *ScalarElement) TensorIndex(i int) (ti [3]int) {
	n1 := el.N + 1
	for d := 0; d < el.Dim; d++ {
		ti[d] = i % n1
		i /= n1
	}
	return
}

// Node returns the reference coordinates of the i-th interpolation node.
func (el *ScalarElement) Node(i int) (p Point) {
	ti := el.TensorIndex(i)
	for d := 0; d < el.Dim; d++ {
		p[d] = el.R[ti[d]]
	}
	return
}

// EvalBasis evaluates basis function i at reference point xi, returning its
// value, gradient and Hessian with respect to the reference coordinates.
func (el *ScalarElement) EvalBasis(i int, xi Point) (val float64, grad Vec, hess Tensor) {
	var (
		ti         = el.TensorIndex(i)
		u, du, ddu [3]float64
	)
	for d := 0; d < el.Dim; d++ {
		u[d], du[d], ddu[d] = el.basis.Eval(ti[d], xi[d])
	}
	val = 1
	for d := 0; d < el.Dim; d++ {
		val *= u[d]
	}
	for a := 0; a < el.Dim; a++ {
		g := du[a]
		for d := 0; d < el.Dim; d++ {
			if d != a {
				g *= u[d]
			}
		}
		grad[a] = g
	}
	for a := 0; a < el.Dim; a++ {
		for b := 0; b < el.Dim; b++ {
			var h float64
			if a == b {
				h = ddu[a]
			} else {
				h = du[a] * du[b]
			}
			for d := 0; d < el.Dim; d++ {
				if d != a && d != b {
					h *= u[d]
				}
			}
			hess[a][b] = h
		}
	}
	return
}
