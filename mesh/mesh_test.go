package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnitHypercube(t *testing.T) {
	_, err := NewUnitHypercube(1, 2)
	assert.Error(t, err)
	_, err = NewUnitHypercube(4, 2)
	assert.Error(t, err)
	_, err = NewUnitHypercube(2, -1)
	assert.Error(t, err)

	msh, err := NewUnitHypercube(2, 2)
	assert.NoError(t, err)
	assert.Equal(t, 4, msh.NPerAxis)
	assert.Equal(t, 16, msh.NumCells())
	assert.Equal(t, 4, msh.NumFacesPerCell())
	assert.True(t, math.Abs(msh.H-0.25) < 1.e-14)

	msh, err = NewUnitHypercube(3, 1)
	assert.NoError(t, err)
	assert.Equal(t, 8, msh.NumCells())
	assert.Equal(t, 6, msh.NumFacesPerCell())
}

func TestCellNumbering(t *testing.T) {
	for _, dim := range []int{2, 3} {
		msh, err := NewUnitHypercube(dim, 2)
		assert.NoError(t, err)
		for c := 0; c < msh.NumCells(); c++ {
			ic := msh.CellCoords(c)
			assert.Equal(t, c, msh.CellID(ic))
		}
		// x runs fastest
		assert.Equal(t, [3]int{1, 0, 0}, msh.CellCoords(1))
		assert.Equal(t, 1, msh.CellCoords(msh.NPerAxis)[1])
	}
}

func TestNeighborRelations(t *testing.T) {
	for _, dim := range []int{2, 3} {
		msh, err := NewUnitHypercube(dim, 2)
		assert.NoError(t, err)
		for c := 0; c < msh.NumCells(); c++ {
			for face := 0; face < msh.NumFacesPerCell(); face++ {
				nb, interior := msh.Neighbor(c, face)
				if !interior {
					assert.True(t, msh.OnBoundary(c, face))
					assert.Equal(t, -1, nb)
					continue
				}
				// the neighbor sees this cell back across the mirrored face
				back, interior2 := msh.Neighbor(nb, msh.NeighborFace(face))
				assert.True(t, interior2)
				assert.Equal(t, c, back)
				// the shared face is owned by exactly one of the two cells
				assert.NotEqual(t, msh.OwnsFace(c, face), msh.OwnsFace(nb, msh.NeighborFace(face)))
			}
		}
	}
}

func TestOwnsFaceCoversEachFaceOnce(t *testing.T) {
	for _, dim := range []int{2, 3} {
		msh, err := NewUnitHypercube(dim, 2)
		assert.NoError(t, err)
		var (
			n        = msh.NPerAxis
			owned    int
			boundary int
		)
		for c := 0; c < msh.NumCells(); c++ {
			for face := 0; face < msh.NumFacesPerCell(); face++ {
				if msh.OnBoundary(c, face) {
					boundary++
				}
				if msh.OwnsFace(c, face) {
					owned++
				}
			}
		}
		perAxisFaces := 1
		for d := 0; d < dim-1; d++ {
			perAxisFaces *= n
		}
		wantBoundary := 2 * dim * perAxisFaces
		wantInterior := dim * (n - 1) * perAxisFaces
		assert.Equal(t, wantBoundary, boundary)
		assert.Equal(t, wantBoundary+wantInterior, owned)
	}
}

func TestGeometry(t *testing.T) {
	msh, _ := NewUnitHypercube(2, 1)
	assert.True(t, math.Abs(msh.FaceDiameter()-0.5) < 1.e-14)
	x := msh.CellOrigin(3)
	assert.True(t, math.Abs(x[0]-0.5) < 1.e-14)
	assert.True(t, math.Abs(x[1]-0.5) < 1.e-14)

	msh3, _ := NewUnitHypercube(3, 1)
	assert.True(t, math.Abs(msh3.FaceDiameter()-0.5*math.Sqrt2) < 1.e-14)
}
