package ops

import "math"

// ExpRule represents the exponential operation: out = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = out
type ExpRule struct{}

// Forward returns e^x.
func (ExpRule) Forward(x, _, _ float64) float64 {
	return math.Exp(x)
}

// Partials returns (out, 0).
func (ExpRule) Partials(_, _, out, _ float64) (dx, dy float64) {
	return out, 0
}
