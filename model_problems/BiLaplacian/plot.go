package BiLaplacian

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/dgfem/biharm/DGQ"
)

// PlotCenterline charts the solved field along the horizontal centerline
// y = 0.5 (2D only), sampled from the cell row just above the line so the
// discontinuous trace is well defined.
func (c *BiLaplacianLDGLift) PlotCenterline(graphDelay ...time.Duration) {
	var (
		msh        = c.Msh
		nPerCell   = 4 * (c.Degree + 1)
		xs, ys     []float64
		pMin, pMax float32
	)
	if c.Dim != 2 {
		return
	}
	var ic [3]int
	ic[1] = msh.NPerAxis / 2
	for i := 0; i < msh.NPerAxis; i++ {
		ic[0] = i
		cell := msh.CellID(ic)
		x0 := msh.CellOrigin(cell)
		for k := 0; k < nPerCell; k++ {
			xi := DGQ.Point{-1 + 2.*float64(k)/float64(nPerCell-1), -1, 0}
			xs = append(xs, x0[0]+(xi[0]+1.)*msh.H/2.)
			ys = append(ys, c.EvalSolution(cell, xi))
		}
	}
	pMin, pMax = float32(ys[0]), float32(ys[0])
	for _, v := range ys {
		if float32(v) < pMin {
			pMin = float32(v)
		}
		if float32(v) > pMax {
			pMax = float32(v)
		}
	}
	if pMax == pMin {
		pMax = pMin + 1
	}
	c.PlotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(1280, 1024, 0, 1, pMin, pMax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})

	if err := c.chart.AddSeries("u", xs, ys,
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
