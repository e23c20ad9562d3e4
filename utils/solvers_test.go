package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConjugateGradient(t *testing.T) {
	A := NewMatrix(3, 3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})
	b := NewVector(3, []float64{1, 2, 3})
	{
		x, err := ConjugateGradient(A, b, 100, 1.e-12)
		assert.NoError(t, err)
		want, _ := A.LUSolve(b)
		for i := 0; i < 3; i++ {
			assert.True(t, near(x.AtVec(i), want.AtVec(i)))
		}
	}
	// the solve is linear in the right hand side
	{
		b2 := NewVector(3, []float64{-1, 0, 2})
		bSum := b.Copy().Add(b2)
		x1, err := ConjugateGradient(A, b, 100, 1.e-12)
		assert.NoError(t, err)
		x2, err := ConjugateGradient(A, b2, 100, 1.e-12)
		assert.NoError(t, err)
		xSum, err := ConjugateGradient(A, bSum, 100, 1.e-12)
		assert.NoError(t, err)
		for i := 0; i < 3; i++ {
			assert.True(t, near(xSum.AtVec(i), x1.AtVec(i)+x2.AtVec(i)))
		}
	}
	// zero right hand side solves trivially
	{
		x, err := ConjugateGradient(A, NewVector(3), 100, 1.e-12)
		assert.NoError(t, err)
		assert.True(t, x.Norm() == 0)
	}
	// exhausting the iteration budget is an error
	{
		_, err := ConjugateGradient(A, b, 1, 1.e-14)
		assert.Error(t, err)
	}
	// the system must be square and sized to the right hand side
	{
		_, err := ConjugateGradient(NewMatrix(3, 2), b, 100, 1.e-12)
		assert.Error(t, err)
		_, err = ConjugateGradient(A, NewVector(2), 100, 1.e-12)
		assert.Error(t, err)
	}
}
