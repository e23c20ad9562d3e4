package BiLaplacian

import (
	"fmt"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/dgfem/biharm/DGQ"
	"github.com/dgfem/biharm/mesh"
	"github.com/dgfem/biharm/utils"
)

// BiLaplacianLDGLift solves the biharmonic problem on the unit square/cube
// with a discontinuous Q_N space. Second derivatives of the broken space are
// replaced by discrete Hessians built from per-cell lifting operators, and
// continuity is enforced weakly through interior-penalty jump terms.
type BiLaplacianLDGLift struct {
	Dim, NRefinements, Degree int
	PenaltyJumpGrad           float64
	PenaltyJumpVal            float64

	Msh    *mesh.Mesh
	El     *DGQ.ScalarElement
	LiftEl *DGQ.LiftElement
	CV     *DGQ.CellValues
	FV     *DGQ.FaceValues
	LV     *DGQ.LiftValues

	Np, NDofs int

	SystemMatrix utils.DOK
	RHS          utils.Vector
	Solution     utils.Vector

	Exact  ExactSolution
	Source func(p DGQ.Point) float64

	chart    *chart2d.Chart2D
	colorMap *utils2.ColorMap
	PlotOnce sync.Once
}

func NewBiLaplacianLDGLift(dim, nRefinements, degree int,
	penaltyJumpGrad, penaltyJumpVal float64) (c *BiLaplacianLDGLift, err error) {
	var (
		msh *mesh.Mesh
		el  *DGQ.ScalarElement
	)
	if msh, err = mesh.NewUnitHypercube(dim, nRefinements); err != nil {
		return
	}
	if el, err = DGQ.NewScalarElement(dim, degree); err != nil {
		return
	}
	c = &BiLaplacianLDGLift{
		Dim:             dim,
		NRefinements:    nRefinements,
		Degree:          degree,
		PenaltyJumpGrad: penaltyJumpGrad,
		PenaltyJumpVal:  penaltyJumpVal,
		Msh:             msh,
		El:              el,
		LiftEl:          DGQ.NewLiftElement(el),
		Np:              el.Np,
		Exact:           ManufacturedSolution{Dim: dim},
		Source:          RightHandSide(dim),
	}
	c.CV = DGQ.NewCellValues(msh, el)
	c.FV = DGQ.NewFaceValues(msh, el)
	// The lifting space reuses the scalar shape data: each lift basis
	// function is a scalar shape function times a unit tensor.
	c.LV = DGQ.NewLiftValues(c.LiftEl, c.CV, c.FV)
	return
}

// GlobalDoF maps (cell, local basis index) to the global dof index. Cells
// are numbered lexicographically, so the map is stable across runs.
func (c *BiLaplacianLDGLift) GlobalDoF(cell, i int) int {
	return cell*c.Np + i
}

// Setup allocates the global system for the current mesh and degree.
func (c *BiLaplacianLDGLift) Setup() {
	c.NDofs = c.Msh.NumCells() * c.Np
	fmt.Printf("Number of active cells: %d\n", c.Msh.NumCells())
	fmt.Printf("Number of degrees of freedom: %d\n", c.NDofs)
	c.SystemMatrix = utils.NewDOK(c.NDofs, c.NDofs)
	c.RHS = utils.NewVector(c.NDofs)
	c.Solution = utils.NewVector(c.NDofs)
}

// Solve factorizes the accumulated system and solves for the dof vector. The
// residual is recomputed against the sparse form of the matrix as a check on
// the factorization.
func (c *BiLaplacianLDGLift) Solve() (err error) {
	A := c.SystemMatrix.ToDense()
	if c.Solution, err = A.LUSolve(c.RHS); err != nil {
		err = fmt.Errorf("direct solve failed: %w", err)
		return
	}
	residual := c.SystemMatrix.ToCSR().MulVec(c.Solution).Subtract(c.RHS)
	fmt.Printf("Solve residual: %v\n", residual.Norm())
	return
}

// EvalSolution evaluates the solved field inside cell at reference point xi.
func (c *BiLaplacianLDGLift) EvalSolution(cell int, xi DGQ.Point) (val float64) {
	for i := 0; i < c.Np; i++ {
		v, _, _ := c.El.EvalBasis(i, xi)
		val += c.Solution.DataP[c.GlobalDoF(cell, i)] * v
	}
	return
}

// Run executes the full pipeline: setup, assembly, solve, error report and
// output files.
func (c *BiLaplacianLDGLift) Run(graph bool, graphDelay ...time.Duration) (err error) {
	start := time.Now()
	c.Setup()

	fmt.Printf("Assembling the system.............\n")
	if err = c.AssembleSystem(); err != nil {
		return
	}
	fmt.Printf("Done, %d nonzero entries\n", c.SystemMatrix.NNZ())

	if err = c.Solve(); err != nil {
		return
	}

	errH2, errH1, errL2 := c.ComputeErrors()
	fmt.Printf("DG H2 norm of the error: %v\n", errH2)
	fmt.Printf("DG H1 norm of the error: %v\n", errH1)
	fmt.Printf("   L2 norm of the error: %v\n", errL2)

	if err = c.WriteSparsitySVG("sparsity_pattern.svg"); err != nil {
		return
	}
	if err = c.WriteSolutionVTK("solution.vtk"); err != nil {
		return
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(start))

	if graph {
		c.PlotCenterline(graphDelay...)
	}
	return
}
