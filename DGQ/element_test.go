package DGQ

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScalarElement(t *testing.T) {
	_, err := NewScalarElement(1, 2)
	assert.Error(t, err)
	_, err = NewScalarElement(2, 0)
	assert.Error(t, err)

	el, err := NewScalarElement(2, 3)
	assert.NoError(t, err)
	assert.Equal(t, 16, el.Np)

	el, err = NewScalarElement(3, 2)
	assert.NoError(t, err)
	assert.Equal(t, 27, el.Np)

	// dof numbering runs over the first axis fastest
	ti := el.TensorIndex(1)
	assert.Equal(t, [3]int{1, 0, 0}, ti)
	ti = el.TensorIndex(3)
	assert.Equal(t, [3]int{0, 1, 0}, ti)
	ti = el.TensorIndex(9)
	assert.Equal(t, [3]int{0, 0, 1}, ti)
}

func TestPartitionOfUnity(t *testing.T) {
	for _, dim := range []int{2, 3} {
		el, err := NewScalarElement(dim, 3)
		assert.NoError(t, err)
		for _, xi := range []Point{
			{0.1, -0.4, 0.7},
			{-1, 1, 0.3},
			{0.9, 0.9, -0.9},
		} {
			var (
				valSum  float64
				gradSum Vec
				hessSum Tensor
			)
			for i := 0; i < el.Np; i++ {
				val, grad, hess := el.EvalBasis(i, xi)
				valSum += val
				gradSum = gradSum.Add(grad)
				hessSum = hessSum.Add(hess)
			}
			assert.True(t, math.Abs(valSum-1) < 1.e-12)
			assert.True(t, gradSum.Norm() < 1.e-11)
			assert.True(t, math.Sqrt(hessSum.NormSquared()) < 1.e-10)
		}
	}
}

func TestBasisReproducesPolynomials(t *testing.T) {
	var (
		el, err = NewScalarElement(2, 3)
		u       = func(p Point) float64 {
			return p[0]*p[0]*p[0] - 2.*p[0]*p[1]*p[1] + p[1]
		}
		gradU = func(p Point) (g Vec) {
			g[0] = 3.*p[0]*p[0] - 2.*p[1]*p[1]
			g[1] = -4.*p[0]*p[1] + 1.
			return
		}
		hessU = func(p Point) (h Tensor) {
			h[0][0] = 6. * p[0]
			h[0][1] = -4. * p[1]
			h[1][0] = -4. * p[1]
			h[1][1] = -4. * p[0]
			return
		}
	)
	assert.NoError(t, err)
	for _, xi := range []Point{{0.2, -0.6}, {-0.8, 0.5}, {1, -1}} {
		var (
			val  float64
			grad Vec
			hess Tensor
		)
		for i := 0; i < el.Np; i++ {
			v, g, h := el.EvalBasis(i, xi)
			c := u(el.Node(i))
			val += c * v
			grad = grad.Add(g.Scale(c))
			hess = hess.Add(h.Scale(c))
		}
		assert.True(t, math.Abs(val-u(xi)) < 1.e-11)
		assert.True(t, grad.Sub(gradU(xi)).Norm() < 1.e-10)
		assert.True(t, math.Sqrt(hess.Sub(hessU(xi)).NormSquared()) < 1.e-9)
	}
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) <= 1.e-08*math.Max(1, math.Abs(b)) {
		l = true
	}
	return
}
