package DGQ

// Lagrange1D is the nodal basis through a fixed set of 1D interpolation
// points.
type Lagrange1D struct {
	Nodes []float64
}

func NewLagrange1D(nodes []float64) *Lagrange1D {
	return &Lagrange1D{Nodes: nodes}
}

func (l *Lagrange1D) Np() int { return len(l.Nodes) }

// Eval returns the j-th basis polynomial and its first two derivatives at x.
// The product over the node factors is accumulated incrementally together
// with its derivatives, so no explicit polynomial coefficients are formed.
func (l *Lagrange1D) Eval(j int, x float64) (u, du, ddu float64) {
	u = 1
	xj := l.Nodes[j]
	for m, xm := range l.Nodes {
		if m == j {
			continue
		}
		dt := 1. / (xj - xm)
		t := (x - xm) * dt
		// order matters: ddu uses the previous du, du the previous u
		ddu = ddu*t + 2*du*dt
		du = du*t + u*dt
		u *= t
	}
	return
}
