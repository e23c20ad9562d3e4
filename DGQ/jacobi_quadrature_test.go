package DGQ

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJacobiGQ(t *testing.T) {
	// Gauss-Legendre with N+1 points integrates polynomials of degree 2N+1
	// exactly on [-1,1]
	for N := 0; N <= 5; N++ {
		x, w := JacobiGQ(0, 0, N)
		assert.Equal(t, N+1, len(x))
		var sum float64
		for _, wq := range w {
			sum += wq
		}
		assert.True(t, math.Abs(sum-2) < 1.e-12)
		for p := 0; p <= 2*N+1; p++ {
			var integral float64
			for q := range x {
				integral += w[q] * math.Pow(x[q], float64(p))
			}
			want := 0.
			if p%2 == 0 {
				want = 2. / float64(p+1)
			}
			assert.True(t, math.Abs(integral-want) < 1.e-12)
		}
	}
}

func TestJacobiGL(t *testing.T) {
	for N := 1; N <= 5; N++ {
		x := JacobiGL(0, 0, N)
		assert.Equal(t, N+1, len(x))
		assert.True(t, near(x[0], -1))
		assert.True(t, near(x[N], 1))
		// nodes are symmetric about the origin and strictly increasing
		for i := 0; i <= N; i++ {
			assert.True(t, math.Abs(x[i]+x[N-i]) < 1.e-12)
			if i > 0 {
				assert.True(t, x[i] > x[i-1])
			}
		}
	}
	// the degree 2 interior node is the origin
	x := JacobiGL(0, 0, 2)
	assert.True(t, math.Abs(x[1]) < 1.e-12)
}
