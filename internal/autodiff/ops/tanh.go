package ops

import "math"

// TanhRule represents the hyperbolic tangent: out = tanh(x).
type TanhRule struct{}

// Forward returns tanh(x).
func (TanhRule) Forward(x, _, _ float64) float64 {
	return math.Tanh(x)
}

// Partials computes the gradient for tanh.
//
// d(tanh(x))/dx = 1 - tanh²(x), and tanh(x) is the output we already have.
func (TanhRule) Partials(_, _, out, _ float64) (dx, dy float64) {
	return 1 - out*out, 0
}
