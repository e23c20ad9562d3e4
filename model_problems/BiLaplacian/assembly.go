package BiLaplacian

import (
	"math"

	"github.com/dgfem/biharm/DGQ"
	"github.com/dgfem/biharm/utils"
)

// AssembleSystem accumulates the global matrix and right hand side.
func (c *BiLaplacianLDGLift) AssembleSystem() (err error) {
	if err = c.AssembleMatrix(); err != nil {
		return
	}
	c.AssembleRHS()
	return
}

// scatter adds the local block into the global matrix at the dof ranges of
// the given row and column cells.
func (c *BiLaplacianLDGLift) scatter(rowCell, colCell int, local utils.Matrix) {
	np := c.Np
	for i := 0; i < np; i++ {
		gi := c.GlobalDoF(rowCell, i)
		for j := 0; j < np; j++ {
			c.SystemMatrix.Accumulate(gi, c.GlobalDoF(colCell, j), local.DataP[i*np+j])
		}
	}
}

// AssembleMatrix builds the symmetric system matrix: the lifted-stiffness
// terms integrate discrete Hessians against each other over each cell
// (including the couplings through neighbor-trace Hessians), and the
// interior-penalty terms charge the value and normal-gradient jumps across
// every face, each interior face visited exactly once.
func (c *BiLaplacianLDGLift) AssembleMatrix() (err error) {
	var (
		np     = c.Np
		nq     = c.CV.NQ
		nqf    = c.FV.NQ
		nFaces = c.Msh.NumFacesPerCell()
		msh    = c.Msh
		fv     = c.FV

		stiffCC   = utils.NewMatrix(np, np) // interactions cell / cell
		stiffCN   = utils.NewMatrix(np, np) // interactions cell / neighbor
		stiffNC   = utils.NewMatrix(np, np) // interactions neighbor / cell
		stiffNN   = utils.NewMatrix(np, np) // interactions neighbor / neighbor
		stiffN1N2 = utils.NewMatrix(np, np) // interactions neighbor1 / neighbor2
		stiffN2N1 = utils.NewMatrix(np, np) // interactions neighbor2 / neighbor1

		ipCC = utils.NewMatrix(np, np)
		ipCN = utils.NewMatrix(np, np)
		ipNC = utils.NewMatrix(np, np)
		ipNN = utils.NewMatrix(np, np)

		meshInv  = 1. / msh.FaceDiameter()
		mesh3Inv = 1. / math.Pow(msh.FaceDiameter(), 3)
	)
	dh := make([][]DGQ.Tensor, np)
	for i := range dh {
		dh[i] = make([]DGQ.Tensor, nq)
	}
	dhNeigh := make([][][]DGQ.Tensor, nFaces)
	for f := range dhNeigh {
		dhNeigh[f] = make([][]DGQ.Tensor, np)
		for i := range dhNeigh[f] {
			dhNeigh[f][i] = make([]DGQ.Tensor, nq)
		}
	}

	for cell := 0; cell < msh.NumCells(); cell++ {
		if err = c.ComputeDiscreteHessians(cell, dh, dhNeigh); err != nil {
			return
		}

		stiffCC.Scale(0)
		for q := 0; q < nq; q++ {
			dx := c.CV.W[q]
			for i := 0; i < np; i++ {
				for j := 0; j < np; j++ {
					stiffCC.DataP[i*np+j] += dh[j][q].Frobenius(dh[i][q]) * dx
				}
			}
		}
		c.scatter(cell, cell, stiffCC)

		for face := 0; face < nFaces; face++ {
			neighbor, interior := msh.Neighbor(cell, face)
			if !interior {
				continue
			}
			stiffCN.Scale(0)
			stiffNC.Scale(0)
			stiffNN.Scale(0)
			for q := 0; q < nq; q++ {
				dx := c.CV.W[q]
				for i := 0; i < np; i++ {
					for j := 0; j < np; j++ {
						hI := dh[i][q]
						hJ := dh[j][q]
						hIN := dhNeigh[face][i][q]
						hJN := dhNeigh[face][j][q]
						stiffCN.DataP[i*np+j] += hJN.Frobenius(hI) * dx
						stiffNC.DataP[i*np+j] += hJ.Frobenius(hIN) * dx
						stiffNN.DataP[i*np+j] += hJN.Frobenius(hIN) * dx
					}
				}
			}
			c.scatter(cell, neighbor, stiffCN)
			c.scatter(neighbor, cell, stiffNC)
			c.scatter(neighbor, neighbor, stiffNN)
		}

		// Two neighbors that share no face still couple through this cell's
		// basis functions: one block per unordered pair of distinct interior
		// faces, plus its transpose.
		for face := 0; face < nFaces-1; face++ {
			neighbor1, interior := msh.Neighbor(cell, face)
			if !interior {
				continue
			}
			for face2 := face + 1; face2 < nFaces; face2++ {
				neighbor2, interior2 := msh.Neighbor(cell, face2)
				if !interior2 {
					continue
				}
				stiffN1N2.Scale(0)
				stiffN2N1.Scale(0)
				for q := 0; q < nq; q++ {
					dx := c.CV.W[q]
					for i := 0; i < np; i++ {
						for j := 0; j < np; j++ {
							hIN1 := dhNeigh[face][i][q]
							hJN1 := dhNeigh[face][j][q]
							hIN2 := dhNeigh[face2][i][q]
							hJN2 := dhNeigh[face2][j][q]
							stiffN1N2.DataP[i*np+j] += hJN2.Frobenius(hIN1) * dx
							stiffN2N1.DataP[i*np+j] += hJN1.Frobenius(hIN2) * dx
						}
					}
				}
				c.scatter(neighbor1, neighbor2, stiffN1N2)
				c.scatter(neighbor2, neighbor1, stiffN2N1)
			}
		}

		for face := 0; face < nFaces; face++ {
			ipCC.Scale(0)
			neighbor, interior := msh.Neighbor(cell, face)
			if !interior {
				for q := 0; q < nqf; q++ {
					dx := fv.W[q]
					for i := 0; i < np; i++ {
						for j := 0; j < np; j++ {
							ipCC.DataP[i*np+j] += c.PenaltyJumpGrad * meshInv *
								fv.G[face][j][q].Dot(fv.G[face][i][q]) * dx
							ipCC.DataP[i*np+j] += c.PenaltyJumpVal * mesh3Inv *
								fv.V[face][j][q] * fv.V[face][i][q] * dx
						}
					}
				}
				c.scatter(cell, cell, ipCC)
				continue
			}
			if !msh.OwnsFace(cell, face) {
				continue // skip this face (already considered)
			}
			nbFace := msh.NeighborFace(face)
			ipCN.Scale(0)
			ipNC.Scale(0)
			ipNN.Scale(0)
			for q := 0; q < nqf; q++ {
				dx := fv.W[q]
				for i := 0; i < np; i++ {
					for j := 0; j < np; j++ {
						gradI := fv.G[face][i][q]
						gradJ := fv.G[face][j][q]
						gradIN := fv.G[nbFace][i][q]
						gradJN := fv.G[nbFace][j][q]
						valI := fv.V[face][i][q]
						valJ := fv.V[face][j][q]
						valIN := fv.V[nbFace][i][q]
						valJN := fv.V[nbFace][j][q]

						ipCC.DataP[i*np+j] += c.PenaltyJumpGrad * meshInv * gradJ.Dot(gradI) * dx
						ipCC.DataP[i*np+j] += c.PenaltyJumpVal * mesh3Inv * valJ * valI * dx

						ipCN.DataP[i*np+j] -= c.PenaltyJumpGrad * meshInv * gradJN.Dot(gradI) * dx
						ipCN.DataP[i*np+j] -= c.PenaltyJumpVal * mesh3Inv * valJN * valI * dx

						ipNC.DataP[i*np+j] -= c.PenaltyJumpGrad * meshInv * gradJ.Dot(gradIN) * dx
						ipNC.DataP[i*np+j] -= c.PenaltyJumpVal * mesh3Inv * valJ * valIN * dx

						ipNN.DataP[i*np+j] += c.PenaltyJumpGrad * meshInv * gradJN.Dot(gradIN) * dx
						ipNN.DataP[i*np+j] += c.PenaltyJumpVal * mesh3Inv * valJN * valIN * dx
					}
				}
			}
			c.scatter(cell, cell, ipCC)
			c.scatter(cell, neighbor, ipCN)
			c.scatter(neighbor, cell, ipNC)
			c.scatter(neighbor, neighbor, ipNN)
		}
	}
	return
}

// AssembleRHS accumulates the load vector from the source term.
func (c *BiLaplacianLDGLift) AssembleRHS() {
	var (
		np = c.Np
		nq = c.CV.NQ
	)
	for cell := 0; cell < c.Msh.NumCells(); cell++ {
		for q := 0; q < nq; q++ {
			dx := c.CV.W[q]
			fVal := c.Source(c.CV.QuadPoint(cell, q))
			for i := 0; i < np; i++ {
				gi := c.GlobalDoF(cell, i)
				c.RHS.DataP[gi] += fVal * c.CV.V[i][q] * dx
			}
		}
	}
}
