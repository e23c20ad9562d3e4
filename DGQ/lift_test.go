package DGQ

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgfem/biharm/mesh"
)

func TestLiftElement(t *testing.T) {
	el, err := NewScalarElement(2, 2)
	assert.NoError(t, err)
	le := NewLiftElement(el)
	assert.Equal(t, 4, le.NComp)
	assert.Equal(t, 36, le.Np)

	for m := 0; m < le.Np; m++ {
		comp, s := le.Split(m)
		assert.Equal(t, m, comp*el.Np+s)
		a, b := le.CompIndex(comp)
		assert.Equal(t, comp, a*le.Dim+b)
	}
}

func TestLiftValues(t *testing.T) {
	var (
		msh, _ = mesh.NewUnitHypercube(2, 1)
		el, _  = NewScalarElement(2, 2)
		le     = NewLiftElement(el)
		cv     = NewCellValues(msh, el)
		fv     = NewFaceValues(msh, el)
		lv     = NewLiftValues(le, cv, fv)
	)
	// a lift basis tensor has a single nonzero entry, the scalar shape value
	for m := 0; m < le.Np; m++ {
		comp, s := le.Split(m)
		a, b := le.CompIndex(comp)
		for q := 0; q < cv.NQ; q++ {
			tens := lv.Value(m, q)
			assert.True(t, near(tens[a][b], cv.V[s][q]))
			tens[a][b] = 0
			assert.True(t, tens.NormSquared() == 0)
		}
	}
	// tau.n keeps row a and picks up the normal component n_b
	{
		face := 3 // high side of the y axis
		normal := fv.Normal[face]
		for m := 0; m < le.Np; m++ {
			comp, s := le.Split(m)
			a, b := le.CompIndex(comp)
			for q := 0; q < fv.NQ; q++ {
				v := lv.FaceValueDotNormal(face, m, q, normal)
				assert.True(t, near(v[a], fv.V[face][s][q]*normal[b]))
				v[a] = 0
				assert.True(t, v.NormSquared() == 0)

				div := lv.FaceDivDotNormal(face, m, q, normal)
				assert.True(t, near(div, fv.G[face][s][q][b]*normal[a]))
			}
		}
	}
	// AddScaled with a unit coefficient vector reproduces Value
	{
		coeffs := make([]float64, le.Np)
		coeffs[7] = 2.5
		for q := 0; q < cv.NQ; q++ {
			var tens Tensor
			lv.AddScaled(coeffs, q, -1, &tens)
			want := lv.Value(7, q).Scale(-2.5)
			assert.True(t, math.Sqrt(tens.Sub(want).NormSquared()) < 1.e-14)
		}
	}
}
