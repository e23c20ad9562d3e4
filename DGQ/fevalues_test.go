package DGQ

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgfem/biharm/mesh"
)

func TestCellValues(t *testing.T) {
	msh, err := mesh.NewUnitHypercube(2, 2)
	assert.NoError(t, err)
	el, err := NewScalarElement(2, 2)
	assert.NoError(t, err)
	cv := NewCellValues(msh, el)
	assert.Equal(t, 9, cv.NQ)

	// quadrature weights sum to the cell volume
	var vol float64
	for q := 0; q < cv.NQ; q++ {
		vol += cv.W[q]
	}
	assert.True(t, math.Abs(vol-msh.H*msh.H) < 1.e-14)

	// physical quadrature points stay inside their cell
	for c := 0; c < msh.NumCells(); c++ {
		x0 := msh.CellOrigin(c)
		for q := 0; q < cv.NQ; q++ {
			p := cv.QuadPoint(c, q)
			for d := 0; d < 2; d++ {
				assert.True(t, p[d] > x0[d] && p[d] < x0[d]+msh.H)
			}
		}
	}

	// the gradients carry the mapping metric: integrating d/dx of a nodal
	// interpolant of x over a cell gives the cell volume
	var integral float64
	for q := 0; q < cv.NQ; q++ {
		for i := 0; i < el.Np; i++ {
			// nodal coefficients of the function x on cell 0
			ci := (el.Node(i)[0] + 1.) * msh.H / 2.
			integral += ci * cv.G[i][q][0] * cv.W[q]
		}
	}
	assert.True(t, math.Abs(integral-msh.H*msh.H) < 1.e-13)
}

func TestFaceValues(t *testing.T) {
	for _, dim := range []int{2, 3} {
		msh, err := mesh.NewUnitHypercube(dim, 1)
		assert.NoError(t, err)
		el, err := NewScalarElement(dim, 2)
		assert.NoError(t, err)
		fv := NewFaceValues(msh, el)

		// face weights sum to the face area
		var area float64
		for q := 0; q < fv.NQ; q++ {
			area += fv.W[q]
		}
		assert.True(t, math.Abs(area-math.Pow(msh.H, float64(dim-1))) < 1.e-14)

		// outward unit normals per face
		for face := 0; face < msh.NumFacesPerCell(); face++ {
			n := fv.Normal[face]
			assert.True(t, near(n.Norm(), 1))
			want := -1.
			if mesh.FaceSide(face) == 1 {
				want = 1.
			}
			assert.True(t, near(n[mesh.FaceAxis(face)], want))
		}
	}
}

// Quadrature point q of a shared face must land on the same physical point
// from both sides; the two-sided face terms rely on it.
func TestFaceQuadraturePointsMatchAcrossFaces(t *testing.T) {
	for _, dim := range []int{2, 3} {
		msh, err := mesh.NewUnitHypercube(dim, 2)
		assert.NoError(t, err)
		el, err := NewScalarElement(dim, 3)
		assert.NoError(t, err)
		fv := NewFaceValues(msh, el)
		for c := 0; c < msh.NumCells(); c++ {
			for face := 0; face < msh.NumFacesPerCell(); face++ {
				nb, interior := msh.Neighbor(c, face)
				if !interior {
					continue
				}
				nbFace := msh.NeighborFace(face)
				for q := 0; q < fv.NQ; q++ {
					p := fv.QuadPoint(c, face, q)
					pn := fv.QuadPoint(nb, nbFace, q)
					for d := 0; d < dim; d++ {
						assert.True(t, math.Abs(p[d]-pn[d]) < 1.e-14)
					}
				}
			}
		}
	}
}
