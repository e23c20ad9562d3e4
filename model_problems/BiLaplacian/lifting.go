package BiLaplacian

import (
	"fmt"

	"github.com/dgfem/biharm/DGQ"
	"github.com/dgfem/biharm/utils"
)

const (
	liftMaxIterations = 1000
	liftTolerance     = 1.e-12
)

// AssembleLocalLiftMatrix builds the Gram matrix of the lifting basis over a
// cell, the SPD system shared by every lifting right hand side. The lift
// basis is a scalar basis per tensor component, so the matrix is the scalar
// mass matrix repeated along the component diagonal.
func (c *BiLaplacianLDGLift) AssembleLocalLiftMatrix() (L utils.Matrix) {
	var (
		snp = c.El.Np
		np  = c.LiftEl.Np
		cv  = c.CV
	)
	mass := utils.NewMatrix(snp, snp)
	for q := 0; q < cv.NQ; q++ {
		dx := cv.W[q]
		for m := 0; m < snp; m++ {
			for n := 0; n < snp; n++ {
				mass.DataP[m*snp+n] += cv.V[m][q] * cv.V[n][q] * dx
			}
		}
	}
	L = utils.NewMatrix(np, np)
	for comp := 0; comp < c.LiftEl.NComp; comp++ {
		base := comp * snp
		for m := 0; m < snp; m++ {
			for n := 0; n < snp; n++ {
				L.DataP[(base+m)*np+base+n] = mass.DataP[m*snp+n]
			}
		}
	}
	return
}

// ComputeDiscreteHessians fills, for every local primal basis function i of
// cell, the self discrete Hessian dh[i][q] at each volume quadrature point,
// and for every interior face the neighbor-trace discrete Hessian
// dhNeigh[face][i][q] describing how basis i is seen from the neighboring
// cell's lifting construction. The local SPD system is built once and reused
// unmodified for every right hand side.
func (c *BiLaplacianLDGLift) ComputeDiscreteHessians(cell int,
	dh [][]DGQ.Tensor, dhNeigh [][][]DGQ.Tensor) (err error) {
	var (
		np     = c.Np
		nq     = c.CV.NQ
		nqf    = c.FV.NQ
		liftNp = c.LiftEl.Np
		nFaces = c.Msh.NumFacesPerCell()
		fv     = c.FV
		lv     = c.LV
		L      = c.AssembleLocalLiftMatrix()
	)
	for i := 0; i < np; i++ {
		for q := 0; q < nq; q++ {
			dh[i][q] = DGQ.Tensor{}
			for face := 0; face < nFaces; face++ {
				dhNeigh[face][i][q] = DGQ.Tensor{}
			}
		}
	}

	var (
		rhsRe = utils.NewVector(liftNp)
		rhsBe = utils.NewVector(liftNp)
	)
	solve := func(rhs utils.Vector) (coeffs utils.Vector, solveErr error) {
		if coeffs, solveErr = utils.ConjugateGradient(L, rhs, liftMaxIterations, liftTolerance); solveErr != nil {
			solveErr = fmt.Errorf("lifting solve on cell %d: %w", cell, solveErr)
		}
		return
	}

	for i := 0; i < np; i++ {
		var (
			coeffsRe = make([]float64, liftNp)
			coeffsBe = make([]float64, liftNp)
		)
		for face := 0; face < nFaces; face++ {
			// averaging factor: two-sided on interior faces, one-sided on
			// the boundary
			factorAvg := 0.5
			if c.Msh.OnBoundary(cell, face) {
				factorAvg = 1.0
			}
			normal := fv.Normal[face]

			rhsRe.SetAll(0)
			rhsBe.SetAll(0)
			for q := 0; q < nqf; q++ {
				dx := fv.W[q]
				gradI := fv.G[face][i][q]
				valI := fv.V[face][i][q]
				for m := 0; m < liftNp; m++ {
					rhsRe.DataP[m] += factorAvg * lv.FaceValueDotNormal(face, m, q, normal).Dot(gradI) * dx
					rhsBe.DataP[m] += factorAvg * lv.FaceDivDotNormal(face, m, q, normal) * valI * dx
				}
			}

			var coeffs utils.Vector
			if coeffs, err = solve(rhsRe); err != nil {
				return
			}
			for m := 0; m < liftNp; m++ {
				coeffsRe[m] += coeffs.DataP[m]
			}
			if coeffs, err = solve(rhsBe); err != nil {
				return
			}
			for m := 0; m < liftNp; m++ {
				coeffsBe[m] += coeffs.DataP[m]
			}
		}

		for q := 0; q < nq; q++ {
			t := c.CV.H[i][q]
			lv.AddScaled(coeffsRe, q, -1, &t)
			lv.AddScaled(coeffsBe, q, +1, &t)
			dh[i][q] = t
		}
	}

	// Neighbor traces: the same two right hand side types restricted to a
	// single interior face, with the neighbor's data and the neighbor's
	// outward normal, lifted onto this cell. The strong Hessian term is
	// omitted; the neighbor reconstructs it in its own pass.
	for face := 0; face < nFaces; face++ {
		if c.Msh.OnBoundary(cell, face) {
			continue
		}
		var (
			nbFace   = c.Msh.NeighborFace(face)
			nbNormal = fv.Normal[nbFace]
		)
		for i := 0; i < np; i++ {
			rhsRe.SetAll(0)
			rhsBe.SetAll(0)
			for q := 0; q < nqf; q++ {
				dx := fv.W[q]
				gradI := fv.G[nbFace][i][q]
				valI := fv.V[nbFace][i][q]
				for m := 0; m < liftNp; m++ {
					rhsRe.DataP[m] += 0.5 * lv.FaceValueDotNormal(face, m, q, nbNormal).Dot(gradI) * dx
					rhsBe.DataP[m] += 0.5 * lv.FaceDivDotNormal(face, m, q, nbNormal) * valI * dx
				}
			}

			var coeffsRe, coeffsBe utils.Vector
			if coeffsRe, err = solve(rhsRe); err != nil {
				return
			}
			if coeffsBe, err = solve(rhsBe); err != nil {
				return
			}
			for q := 0; q < nq; q++ {
				var t DGQ.Tensor
				lv.AddScaled(coeffsRe.DataP, q, -1, &t)
				lv.AddScaled(coeffsBe.DataP, q, +1, &t)
				dhNeigh[face][i][q] = t
			}
		}
	}
	return
}
