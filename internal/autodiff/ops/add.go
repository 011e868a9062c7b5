package ops

// AddRule represents addition: out = x + y.
//
// Backward pass:
//   - d(x+y)/dx = 1
//   - d(x+y)/dy = 1
//
// The output gradient flows unchanged to both operands.
type AddRule struct{}

// Forward returns x + y.
func (AddRule) Forward(x, y, _ float64) float64 {
	return x + y
}

// Partials returns (1, 1).
func (AddRule) Partials(_, _, _, _ float64) (dx, dy float64) {
	return 1, 1
}
