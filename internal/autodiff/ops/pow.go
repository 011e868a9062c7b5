package ops

import "math"

// PowRule raises a node to a constant exponent: out = x ** c.
//
// The exponent lives in the node's argument, not in the graph, so no gradient
// flows to it. Differentiating through a variable exponent is not supported.
//
// Backward pass:
//   - d(x^c)/dx = c * x^(c-1)
type PowRule struct{}

// Forward returns x raised to arg.
func (PowRule) Forward(x, _, arg float64) float64 {
	return math.Pow(x, arg)
}

// Partials returns (c * x^(c-1), 0).
func (PowRule) Partials(x, _, _, arg float64) (dx, dy float64) {
	return arg * math.Pow(x, arg-1), 0
}
