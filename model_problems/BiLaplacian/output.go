package BiLaplacian

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/dgfem/biharm/DGQ"
)

// WriteSparsitySVG draws the nonzero structure of the assembled matrix, one
// unit square per stored entry.
func (c *BiLaplacianLDGLift) WriteSparsitySVG(fileName string) (err error) {
	var (
		f      *os.File
		nr, nc = c.SystemMatrix.Dims()
	)
	if f, err = os.Create(fileName); err != nil {
		return
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\">\n", nc+2, nr+2)
	fmt.Fprintf(w, "<rect width=\"%d\" height=\"%d\" fill=\"rgb(255,255,255)\"/>\n", nc+2, nr+2)
	fmt.Fprintf(w, "<rect x=\"1\" y=\"1\" width=\"%d\" height=\"%d\" fill=\"none\" stroke=\"rgb(0,0,0)\" stroke-width=\"0.1\"/>\n", nc, nr)

	type entry struct{ i, j int }
	var entries []entry
	c.SystemMatrix.DoNonZero(func(i, j int, v float64) {
		if v != 0 {
			entries = append(entries, entry{i, j})
		}
	})
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].i != entries[b].i {
			return entries[a].i < entries[b].i
		}
		return entries[a].j < entries[b].j
	})
	for _, e := range entries {
		fmt.Fprintf(w, "<rect x=\"%d\" y=\"%d\" width=\"1\" height=\"1\" fill=\"rgb(0,0,0)\"/>\n", e.j+1, e.i+1)
	}
	fmt.Fprintf(w, "</svg>\n")
	return
}

// vtkCornerOrder lists the reference-cell corners in VTK vertex order for
// VTK_QUAD and VTK_HEXAHEDRON; bit d of each entry selects the high side
// along axis d.
var vtkCornerOrder = map[int][]int{
	2: {0, 1, 3, 2},
	3: {0, 1, 3, 2, 4, 5, 7, 6},
}

// WriteSolutionVTK writes the solved field as a legacy-VTK unstructured
// grid. Each cell gets its own disconnected corner vertices, so the
// inter-cell jumps of the DG field stay visible.
func (c *BiLaplacianLDGLift) WriteSolutionVTK(fileName string) (err error) {
	var (
		f        *os.File
		msh      = c.Msh
		dim      = c.Dim
		nCells   = msh.NumCells()
		order    = vtkCornerOrder[dim]
		nCorners = len(order)
		cellType = 9 // VTK_QUAD
	)
	if dim == 3 {
		cellType = 12 // VTK_HEXAHEDRON
	}
	if f, err = os.Create(fileName); err != nil {
		return
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	// basis values at the reference corners, reused for every cell
	cornerV := make([][]float64, nCorners)
	for k, corner := range order {
		cornerV[k] = make([]float64, c.Np)
		var xi DGQ.Point
		for d := 0; d < dim; d++ {
			xi[d] = -1
			if corner&(1<<uint(d)) != 0 {
				xi[d] = 1
			}
		}
		for i := 0; i < c.Np; i++ {
			cornerV[k][i], _, _ = c.El.EvalBasis(i, xi)
		}
	}

	fmt.Fprintf(w, "# vtk DataFile Version 3.0\n")
	fmt.Fprintf(w, "biharmonic solution\n")
	fmt.Fprintf(w, "ASCII\n")
	fmt.Fprintf(w, "DATASET UNSTRUCTURED_GRID\n")

	fmt.Fprintf(w, "POINTS %d double\n", nCells*nCorners)
	for cell := 0; cell < nCells; cell++ {
		x0 := msh.CellOrigin(cell)
		for _, corner := range order {
			var p [3]float64
			for d := 0; d < dim; d++ {
				p[d] = x0[d]
				if corner&(1<<uint(d)) != 0 {
					p[d] += msh.H
				}
			}
			fmt.Fprintf(w, "%v %v %v\n", p[0], p[1], p[2])
		}
	}

	fmt.Fprintf(w, "CELLS %d %d\n", nCells, nCells*(nCorners+1))
	for cell := 0; cell < nCells; cell++ {
		fmt.Fprintf(w, "%d", nCorners)
		for k := 0; k < nCorners; k++ {
			fmt.Fprintf(w, " %d", cell*nCorners+k)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "CELL_TYPES %d\n", nCells)
	for cell := 0; cell < nCells; cell++ {
		fmt.Fprintf(w, "%d\n", cellType)
	}

	fmt.Fprintf(w, "POINT_DATA %d\n", nCells*nCorners)
	fmt.Fprintf(w, "SCALARS solution double 1\n")
	fmt.Fprintf(w, "LOOKUP_TABLE default\n")
	for cell := 0; cell < nCells; cell++ {
		for k := 0; k < nCorners; k++ {
			var val float64
			for i := 0; i < c.Np; i++ {
				val += c.Solution.DataP[c.GlobalDoF(cell, i)] * cornerV[k][i]
			}
			fmt.Fprintf(w, "%v\n", val)
		}
	}
	return
}
