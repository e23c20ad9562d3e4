package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.True(t, near(M.At(1, 2), 6))
		assert.True(t, near(M.Max(), 6))
		assert.True(t, near(M.Min(), 1))

		MT := M.Transpose()
		nr, nc = MT.Dims()
		assert.Equal(t, 3, nr)
		assert.Equal(t, 2, nc)
		assert.True(t, near(MT.At(2, 1), 6))
		assert.True(t, near(MT.At(0, 1), 4))

		R := M.Row(1)
		assert.True(t, near(R.AtVec(0), 4))
		C := M.Col(2)
		assert.True(t, near(C.AtVec(1), 6))
	}
	// matrix-matrix and matrix-vector products
	{
		A := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		B := NewMatrix(2, 2, []float64{
			0, 1,
			1, 0,
		})
		C := A.Mul(B)
		assert.True(t, near(C.At(0, 0), 2))
		assert.True(t, near(C.At(0, 1), 1))
		assert.True(t, near(C.At(1, 0), 4))
		assert.True(t, near(C.At(1, 1), 3))

		v := NewVector(2, []float64{1, -1})
		Av := A.MulVec(v)
		assert.True(t, near(Av.AtVec(0), -1))
		assert.True(t, near(Av.AtVec(1), -1))
	}
	// in-place operations return the receiver
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		B := NewMatrix(2, 2, []float64{1, 1, 1, 1})
		A.Add(B).Scale(2)
		assert.True(t, near(A.At(0, 0), 4))
		assert.True(t, near(A.At(1, 1), 10))
		A.Subtract(B)
		assert.True(t, near(A.At(0, 0), 3))
	}
	// read only protection
	{
		A := NewMatrix(2, 2)
		A.SetReadOnly("A")
		assert.Panics(t, func() { A.Set(0, 0, 1) })
		A.SetWritable()
		assert.NotPanics(t, func() { A.Set(0, 0, 1) })
	}
}

func TestMatrixLUSolve(t *testing.T) {
	A := NewMatrix(3, 3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})
	b := NewVector(3, []float64{1, 2, 3})
	x, err := A.LUSolve(b)
	assert.NoError(t, err)
	r := A.MulVec(x).Subtract(b)
	assert.True(t, r.Norm() < 1.e-12)
}

func TestVector(t *testing.T) {
	v := NewVector(3, []float64{3, 4, 0})
	assert.True(t, near(v.Norm(), 5))
	assert.True(t, near(v.Max(), 4))
	assert.True(t, near(v.Min(), 0))

	w := v.Copy()
	w.Scale(2)
	assert.True(t, near(v.AtVec(0), 3)) // copy does not alias
	assert.True(t, near(w.AtVec(0), 6))

	assert.True(t, near(v.Dot(w), 50))
	w.SetAll(1)
	assert.True(t, near(v.Dot(w), 7))
	v.Add(w)
	assert.True(t, near(v.AtVec(2), 1))
	v.Subtract(w).Subtract(w)
	assert.True(t, near(v.AtVec(0), 2))
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) <= 1.e-08*math.Max(1, math.Abs(b)) {
		l = true
	}
	return
}
