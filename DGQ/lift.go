package DGQ

// LiftElement is the tensor-valued space used by the lifting operators: one
// copy of the scalar Q_N basis per tensor component, dim*dim components.
// Lift dofs are component-major: m = comp*Scalar.Np + s with
// comp = a*Dim + b addressing tensor entry (a,b).
type LiftElement struct {
	Scalar *ScalarElement
	Dim    int
	NComp  int
	Np     int
}

func NewLiftElement(scalar *ScalarElement) *LiftElement {
	nComp := scalar.Dim * scalar.Dim
	return &LiftElement{
		Scalar: scalar,
		Dim:    scalar.Dim,
		NComp:  nComp,
		Np:     nComp * scalar.Np,
	}
}

// Split returns the tensor component and scalar dof of lift dof m.
func (le *LiftElement) Split(m int) (comp, s int) {
	comp = m / le.Scalar.Np
	s = m % le.Scalar.Np
	return
}

// CompIndex returns the tensor entry (a, b) addressed by component comp.
func (le *LiftElement) CompIndex(comp int) (a, b int) {
	a = comp / le.Dim
	b = comp % le.Dim
	return
}

// LiftValues evaluates the lifting basis using the scalar shape data already
// computed for the cell and face quadrature points. A lift basis function is
// a scalar shape function times a unit tensor, so every quantity reduces to
// scalar values/gradients placed in the right component.
type LiftValues struct {
	El   *LiftElement
	Cell *CellValues
	Face *FaceValues
}

func NewLiftValues(el *LiftElement, cell *CellValues, face *FaceValues) *LiftValues {
	return &LiftValues{El: el, Cell: cell, Face: face}
}

// Value returns the tensor value of lift basis m at cell quadrature point q.
func (lv *LiftValues) Value(m, q int) (t Tensor) {
	comp, s := lv.El.Split(m)
	a, b := lv.El.CompIndex(comp)
	t[a][b] = lv.Cell.V[s][q]
	return
}

// FaceValueDotNormal returns tau_m * n at face quadrature point q: for a
// basis tensor phi*e_a(x)e_b this is the vector phi*n_b*e_a.
func (lv *LiftValues) FaceValueDotNormal(face, m, q int, normal Vec) (v Vec) {
	comp, s := lv.El.Split(m)
	a, b := lv.El.CompIndex(comp)
	v[a] = lv.Face.V[face][s][q] * normal[b]
	return
}

// FaceDivDotNormal returns div(tau_m) . n at face quadrature point q, with
// the row-wise divergence (div tau)_r = d(tau_rc)/dx_c: for phi*e_a(x)e_b
// this is (dphi/dx_b) * n_a.
func (lv *LiftValues) FaceDivDotNormal(face, m, q int, normal Vec) float64 {
	comp, s := lv.El.Split(m)
	a, b := lv.El.CompIndex(comp)
	return lv.Face.G[face][s][q][b] * normal[a]
}

// AddScaled accumulates coeff_m * tau_m(q) over all lift dofs into a tensor,
// given the coefficient vector of a lifted field.
func (lv *LiftValues) AddScaled(coeffs []float64, q int, sign float64, t *Tensor) {
	var (
		np = lv.El.Scalar.Np
	)
	for comp := 0; comp < lv.El.NComp; comp++ {
		a, b := lv.El.CompIndex(comp)
		var sum float64
		base := comp * np
		for s := 0; s < np; s++ {
			sum += coeffs[base+s] * lv.Cell.V[s][q]
		}
		t[a][b] += sign * sum
	}
}
