package DGQ

import (
	"github.com/dgfem/biharm/mesh"
)

// CellValues holds the primal-space shape data at the volume quadrature
// points. The mesh is uniform, so reference-cell values are computed once and
// the gradients/Hessians are pre-scaled by the (diagonal) mapping metric;
// only the physical point locations vary from cell to cell.
type CellValues struct {
	Msh *mesh.Mesh
	El  *ScalarElement
	NQ  int
	W   []float64 // JxW, identical for every cell
	Ref []Point   // reference quadrature points
	V   [][]float64
	G   [][]Vec
	H   [][]Tensor
}

func NewCellValues(msh *mesh.Mesh, el *ScalarElement) (cv *CellValues) {
	var (
		dim      = msh.Dim
		nq1      = el.N + 1
		g1d, w1d = JacobiGQ(0, 0, el.N)
		scale    = 2. / msh.H // d(xi)/dx for the affine cell map
	)
	nq := 1
	for d := 0; d < dim; d++ {
		nq *= nq1
	}
	cv = &CellValues{
		Msh: msh,
		El:  el,
		NQ:  nq,
		W:   make([]float64, nq),
		Ref: make([]Point, nq),
	}
	jac := 1.
	for d := 0; d < dim; d++ {
		jac *= msh.H / 2.
	}
	for q := 0; q < nq; q++ {
		qq := q
		w := jac
		for d := 0; d < dim; d++ {
			iq := qq % nq1
			qq /= nq1
			cv.Ref[q][d] = g1d[iq]
			w *= w1d[iq]
		}
		cv.W[q] = w
	}
	cv.V = make([][]float64, el.Np)
	cv.G = make([][]Vec, el.Np)
	cv.H = make([][]Tensor, el.Np)
	for i := 0; i < el.Np; i++ {
		cv.V[i] = make([]float64, nq)
		cv.G[i] = make([]Vec, nq)
		cv.H[i] = make([]Tensor, nq)
		for q := 0; q < nq; q++ {
			val, grad, hess := el.EvalBasis(i, cv.Ref[q])
			cv.V[i][q] = val
			cv.G[i][q] = grad.Scale(scale)
			cv.H[i][q] = hess.Scale(scale * scale)
		}
	}
	return
}

// QuadPoint maps reference quadrature point q of cell c to physical space.
func (cv *CellValues) QuadPoint(c, q int) (p Point) {
	x0 := cv.Msh.CellOrigin(c)
	for d := 0; d < cv.Msh.Dim; d++ {
		p[d] = x0[d] + (cv.Ref[q][d]+1.)*cv.Msh.H/2.
	}
	return
}

// FaceValues holds the primal-space shape data at the face quadrature points
// of every face of the reference cell, plus outward normals and face JxW.
// Face quadrature points are ordered lexicographically over the in-plane
// axes, so point q on a face coincides in physical space with point q of the
// same face as seen from the neighboring cell.
type FaceValues struct {
	Msh    *mesh.Mesh
	El     *ScalarElement
	NQ     int
	W      []float64 // face JxW, identical for every face of every cell
	Ref    [][]Point // [face][q] reference points
	V      [][][]float64
	G      [][][]Vec
	Normal []Vec
}

func NewFaceValues(msh *mesh.Mesh, el *ScalarElement) (fv *FaceValues) {
	var (
		dim      = msh.Dim
		nq1      = el.N + 1
		nFaces   = msh.NumFacesPerCell()
		g1d, w1d = JacobiGQ(0, 0, el.N)
		scale    = 2. / msh.H
	)
	nq := 1
	for d := 0; d < dim-1; d++ {
		nq *= nq1
	}
	fv = &FaceValues{
		Msh:    msh,
		El:     el,
		NQ:     nq,
		W:      make([]float64, nq),
		Ref:    make([][]Point, nFaces),
		V:      make([][][]float64, nFaces),
		G:      make([][][]Vec, nFaces),
		Normal: make([]Vec, nFaces),
	}
	jac := 1.
	for d := 0; d < dim-1; d++ {
		jac *= msh.H / 2.
	}
	for face := 0; face < nFaces; face++ {
		var (
			axis  = mesh.FaceAxis(face)
			side  = mesh.FaceSide(face)
			plane []int
		)
		for d := 0; d < dim; d++ {
			if d != axis {
				plane = append(plane, d)
			}
		}
		if side == 0 {
			fv.Normal[face][axis] = -1
		} else {
			fv.Normal[face][axis] = 1
		}
		fv.Ref[face] = make([]Point, nq)
		for q := 0; q < nq; q++ {
			var p Point
			if side == 0 {
				p[axis] = -1
			} else {
				p[axis] = 1
			}
			qq := q
			w := jac
			for _, d := range plane {
				iq := qq % nq1
				qq /= nq1
				p[d] = g1d[iq]
				w *= w1d[iq]
			}
			fv.Ref[face][q] = p
			if face == 0 {
				fv.W[q] = w
			}
		}
		fv.V[face] = make([][]float64, el.Np)
		fv.G[face] = make([][]Vec, el.Np)
		for i := 0; i < el.Np; i++ {
			fv.V[face][i] = make([]float64, nq)
			fv.G[face][i] = make([]Vec, nq)
			for q := 0; q < nq; q++ {
				val, grad, _ := el.EvalBasis(i, fv.Ref[face][q])
				fv.V[face][i][q] = val
				fv.G[face][i][q] = grad.Scale(scale)
			}
		}
	}
	return
}

// QuadPoint maps face quadrature point q of face `face` of cell c to
// physical space.
func (fv *FaceValues) QuadPoint(c, face, q int) (p Point) {
	x0 := fv.Msh.CellOrigin(c)
	for d := 0; d < fv.Msh.Dim; d++ {
		p[d] = x0[d] + (fv.Ref[face][q][d]+1.)*fv.Msh.H/2.
	}
	return
}
