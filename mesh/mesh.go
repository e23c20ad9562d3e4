// Package mesh provides the uniform Cartesian decomposition of the unit
// square/cube used by the DG solvers. Cells and faces carry stable integer
// identities and neighbor relations are resolved by lookup, never by stored
// back-pointers.
package mesh

import (
	"fmt"
	"math"
)

// Mesh is a uniform subdivision of [0,1]^Dim into (2^NRefinements)^Dim cells.
// Cells are numbered lexicographically, x fastest. Faces of a cell are
// numbered 0..2*Dim-1: face f lies on axis f/2, on the low side when f%2 == 0
// and on the high side when f%2 == 1.
type Mesh struct {
	Dim          int
	NRefinements int
	NPerAxis     int
	H            float64 // cell edge length
}

func NewUnitHypercube(dim, nRefinements int) (msh *Mesh, err error) {
	if dim != 2 && dim != 3 {
		err = fmt.Errorf("spatial dimension must be 2 or 3, got %d", dim)
		return
	}
	if nRefinements < 0 {
		err = fmt.Errorf("number of refinements must be non-negative, got %d", nRefinements)
		return
	}
	n := 1 << uint(nRefinements)
	msh = &Mesh{
		Dim:          dim,
		NRefinements: nRefinements,
		NPerAxis:     n,
		H:            1. / float64(n),
	}
	return
}

func (msh *Mesh) NumCells() (nc int) {
	nc = 1
	for d := 0; d < msh.Dim; d++ {
		nc *= msh.NPerAxis
	}
	return
}

func (msh *Mesh) NumFacesPerCell() int { return 2 * msh.Dim }

// CellCoords returns the integer lattice coordinates of cell c.
func (msh *Mesh) CellCoords(c int) (ic [3]int) {
	for d := 0; d < msh.Dim; d++ {
		ic[d] = c % msh.NPerAxis
		c /= msh.NPerAxis
	}
	return
}

// CellID is the inverse of CellCoords.
func (msh *Mesh) CellID(ic [3]int) (c int) {
	for d := msh.Dim - 1; d >= 0; d-- {
		c = c*msh.NPerAxis + ic[d]
	}
	return
}

// CellOrigin returns the low corner of cell c in physical coordinates.
func (msh *Mesh) CellOrigin(c int) (x [3]float64) {
	ic := msh.CellCoords(c)
	for d := 0; d < msh.Dim; d++ {
		x[d] = float64(ic[d]) * msh.H
	}
	return
}

func FaceAxis(face int) int { return face / 2 }
func FaceSide(face int) int { return face % 2 }

// NeighborFace returns the index of the shared face as seen from the
// neighbor across face: same axis, opposite side.
func (msh *Mesh) NeighborFace(face int) int { return face ^ 1 }

func (msh *Mesh) OnBoundary(c, face int) bool {
	var (
		ic   = msh.CellCoords(c)
		axis = FaceAxis(face)
	)
	if FaceSide(face) == 0 {
		return ic[axis] == 0
	}
	return ic[axis] == msh.NPerAxis-1
}

// Neighbor returns the id of the cell across face and whether the face is
// interior. For boundary faces the returned id is -1.
func (msh *Mesh) Neighbor(c, face int) (nb int, interior bool) {
	if msh.OnBoundary(c, face) {
		return -1, false
	}
	ic := msh.CellCoords(c)
	axis := FaceAxis(face)
	if FaceSide(face) == 0 {
		ic[axis]--
	} else {
		ic[axis]++
	}
	return msh.CellID(ic), true
}

// FaceDiameter is the diameter of any face: h for the edges of a square
// cell, h*sqrt(2) for the square faces of a cube cell.
func (msh *Mesh) FaceDiameter() float64 {
	return msh.H * math.Sqrt(float64(msh.Dim-1))
}

// OwnsFace implements the canonical visiting rule for two-sided face terms:
// a boundary face is owned by its only cell, an interior face by the cell
// with the smaller id. Every face is owned by exactly one cell, so a loop
// over all (cell, face) pairs guarded by OwnsFace touches each face once
// regardless of traversal order.
func (msh *Mesh) OwnsFace(c, face int) bool {
	nb, interior := msh.Neighbor(c, face)
	if !interior {
		return true
	}
	return c < nb
}
