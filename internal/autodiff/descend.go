package autodiff

import "gonum.org/v1/gonum/floats"

// Descend applies one plain gradient-descent step to every value:
//
//	data -= lr * grad
//
// A value listed twice is updated twice. Gradients are left untouched.
func Descend(params []Value, lr float64) {
	if len(params) == 0 {
		return
	}

	deltas := make([]float64, len(params))
	for i, p := range params {
		deltas[i] = p.node().grad
	}
	floats.Scale(-lr, deltas)

	for i, p := range params {
		p.node().data += deltas[i]
	}
}

// GradOf returns the gradient of each value.
func GradOf(vs []Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Grad()
	}
	return out
}

// DataOf returns the data of each value.
func DataOf(vs []Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Data()
	}
	return out
}
