package DGQ

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLagrange1D(t *testing.T) {
	nodes := JacobiGL(0, 0, 4)
	l := NewLagrange1D(nodes)
	assert.Equal(t, 5, l.Np())

	// cardinal property at the nodes
	for j := range nodes {
		for k, xk := range nodes {
			u, _, _ := l.Eval(j, xk)
			want := 0.
			if j == k {
				want = 1.
			}
			assert.True(t, math.Abs(u-want) < 1.e-12)
		}
	}

	// derivatives against central differences
	var (
		x = 0.3
		h = 1.e-5
	)
	for j := range nodes {
		u, du, ddu := l.Eval(j, x)
		up, _, _ := l.Eval(j, x+h)
		um, _, _ := l.Eval(j, x-h)
		assert.True(t, math.Abs(du-(up-um)/(2*h)) < 1.e-6)
		assert.True(t, math.Abs(ddu-(up-2*u+um)/(h*h)) < 1.e-4)
	}
}
