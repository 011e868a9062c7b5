package ops

// DefaultLeakySlope is the negative slope used by LeakyReLU when none is given.
const DefaultLeakySlope = 0.01

// ReLURule represents a ReLU (Rectified Linear Unit) activation: out = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if out > 0, else 0
type ReLURule struct{}

// Forward returns max(0, x).
func (ReLURule) Forward(x, _, _ float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Partials masks the gradient with out > 0.
func (ReLURule) Partials(_, _, out, _ float64) (dx, dy float64) {
	if out > 0 {
		return 1, 0
	}
	return 0, 0
}

// LeakyReLURule lets a small gradient through for negative inputs:
// out = x if x > 0, else alpha*x.
//
// Backward pass:
//   - d/dx = 1 if out > 0, else alpha
//
// alpha is expected to be positive, so out > 0 exactly when x > 0.
type LeakyReLURule struct{}

// Forward returns x for positive inputs and arg*x otherwise.
func (LeakyReLURule) Forward(x, _, arg float64) float64 {
	if x > 0 {
		return x
	}
	return arg * x
}

// Partials returns (1, 0) on the positive side and (arg, 0) elsewhere.
func (LeakyReLURule) Partials(_, _, out, arg float64) (dx, dy float64) {
	if out > 0 {
		return 1, 0
	}
	return arg, 0
}
