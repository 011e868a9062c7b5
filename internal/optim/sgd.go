package optim

import "github.com/born-ml/micrograd/internal/autodiff"

// DefaultLR is the learning rate used when SGDConfig.LR is zero.
const DefaultLR = 0.01

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Parameters are updated once per listed occurrence, and gradients are left
// in place until ZeroGrad.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	loss.Backward()
//	optimizer.Step()
//	optimizer.ZeroGrad()
type SGD struct {
	params []autodiff.Value
	lr     float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD(params []autodiff.Value, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = DefaultLR
	}

	return &SGD{
		params: params,
		lr:     config.LR,
	}
}

// Step performs a single optimization step: param -= lr * grad.
func (s *SGD) Step() {
	autodiff.Descend(s.params, s.lr)
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Params returns the parameters being optimized.
func (s *SGD) Params() []autodiff.Value {
	return s.params
}

var _ Optimizer = (*SGD)(nil)
