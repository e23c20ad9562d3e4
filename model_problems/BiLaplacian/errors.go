package BiLaplacian

import (
	"math"

	"github.com/dgfem/biharm/DGQ"
)

// ComputeErrors evaluates the broken H2, broken H1 and L2 error norms of the
// solved field against the exact solution. Cell terms integrate the
// pointwise differences; face terms charge the jumps, with boundary faces
// measured against the implicit zero exact trace and interior faces visited
// exactly once.
func (c *BiLaplacianLDGLift) ComputeErrors() (errH2, errH1, errL2 float64) {
	var (
		np       = c.Np
		nq       = c.CV.NQ
		nqf      = c.FV.NQ
		nFaces   = c.Msh.NumFacesPerCell()
		msh      = c.Msh
		fv       = c.FV
		meshInv  = 1. / msh.FaceDiameter()
		mesh3Inv = 1. / math.Pow(msh.FaceDiameter(), 3)
		sol      = c.Solution.DataP
	)

	for cell := 0; cell < msh.NumCells(); cell++ {
		for q := 0; q < nq; q++ {
			var (
				dx   = c.CV.W[q]
				valN float64
				grdN DGQ.Vec
				hesN DGQ.Tensor
			)
			for i := 0; i < np; i++ {
				u := sol[c.GlobalDoF(cell, i)]
				valN += u * c.CV.V[i][q]
				grdN = grdN.Add(c.CV.G[i][q].Scale(u))
				hesN = hesN.Add(c.CV.H[i][q].Scale(u))
			}
			p := c.CV.QuadPoint(cell, q)
			errH2 += c.Exact.Hessian(p).Sub(hesN).NormSquared() * dx
			errH1 += c.Exact.Gradient(p).Sub(grdN).NormSquared() * dx
			diff := c.Exact.Value(p) - valN
			errL2 += diff * diff * dx
		}

		for face := 0; face < nFaces; face++ {
			neighbor, interior := msh.Neighbor(cell, face)
			if !interior {
				for q := 0; q < nqf; q++ {
					var (
						dx   = fv.W[q]
						valN float64
						grdN DGQ.Vec
					)
					for i := 0; i < np; i++ {
						u := sol[c.GlobalDoF(cell, i)]
						valN += u * fv.V[face][i][q]
						grdN = grdN.Add(fv.G[face][i][q].Scale(u))
					}
					p := fv.QuadPoint(cell, face, q)
					valE := c.Exact.Value(p)
					grdE := c.Exact.Gradient(p)

					errH2 += meshInv * grdE.Sub(grdN).NormSquared() * dx
					errH2 += mesh3Inv * (valE - valN) * (valE - valN) * dx
					errH1 += meshInv * (valE - valN) * (valE - valN) * dx
				}
				continue
			}
			if !msh.OwnsFace(cell, face) {
				continue // skip this face (already considered)
			}
			nbFace := msh.NeighborFace(face)
			for q := 0; q < nqf; q++ {
				var (
					dx         = fv.W[q]
					valN, valM float64
					grdN, grdM DGQ.Vec
				)
				for i := 0; i < np; i++ {
					u := sol[c.GlobalDoF(cell, i)]
					un := sol[c.GlobalDoF(neighbor, i)]
					valN += u * fv.V[face][i][q]
					grdN = grdN.Add(fv.G[face][i][q].Scale(u))
					valM += un * fv.V[nbFace][i][q]
					grdM = grdM.Add(fv.G[nbFace][i][q].Scale(un))
				}
				errH2 += meshInv * grdM.Sub(grdN).NormSquared() * dx
				errH2 += mesh3Inv * (valM - valN) * (valM - valN) * dx
				errH1 += meshInv * (valM - valN) * (valM - valN) * dx
			}
		}
	}

	errH2 = math.Sqrt(errH2)
	errH1 = math.Sqrt(errH1)
	errL2 = math.Sqrt(errL2)
	return
}
