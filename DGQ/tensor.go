package DGQ

import "math"

// Point, Vec and Tensor are fixed-size value types shared by the 2D and 3D
// paths; components beyond the active dimension stay zero.
type Point [3]float64

type Vec [3]float64

type Tensor [3][3]float64

func (v Vec) Add(w Vec) (r Vec) {
	for i := 0; i < 3; i++ {
		r[i] = v[i] + w[i]
	}
	return
}

func (v Vec) Sub(w Vec) (r Vec) {
	for i := 0; i < 3; i++ {
		r[i] = v[i] - w[i]
	}
	return
}

func (v Vec) Scale(a float64) (r Vec) {
	for i := 0; i < 3; i++ {
		r[i] = a * v[i]
	}
	return
}

func (v Vec) Dot(w Vec) (d float64) {
	for i := 0; i < 3; i++ {
		d += v[i] * w[i]
	}
	return
}

func (v Vec) NormSquared() float64 { return v.Dot(v) }
func (v Vec) Norm() float64        { return math.Sqrt(v.Dot(v)) }

func (t Tensor) Add(s Tensor) (r Tensor) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[i][j] + s[i][j]
		}
	}
	return
}

func (t Tensor) Sub(s Tensor) (r Tensor) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[i][j] - s[i][j]
		}
	}
	return
}

func (t Tensor) Scale(a float64) (r Tensor) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a * t[i][j]
		}
	}
	return
}

// Frobenius is the tensor scalar product t : s.
func (t Tensor) Frobenius(s Tensor) (d float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d += t[i][j] * s[i][j]
		}
	}
	return
}

func (t Tensor) NormSquared() float64 { return t.Frobenius(t) }
