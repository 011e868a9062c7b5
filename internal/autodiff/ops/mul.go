package ops

// MulRule represents multiplication: out = x * y.
//
// Backward pass:
//   - d(x*y)/dx = y
//   - d(x*y)/dy = x
type MulRule struct{}

// Forward returns x * y.
func (MulRule) Forward(x, y, _ float64) float64 {
	return x * y
}

// Partials returns (y, x).
//
// When both operands are the same node the graph applies both partials to it,
// so x*x correctly receives 2x.
func (MulRule) Partials(x, y, _, _ float64) (dx, dy float64) {
	return y, x
}
