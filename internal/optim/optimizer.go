// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: plain gradient descent, data -= lr * grad
//
// Example usage:
//
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for step := range steps {
//	    mark := g.Mark()
//	    loss := computeLoss(model, data)
//
//	    sgd.ZeroGrad()
//	    loss.Backward()
//	    sgd.Step()
//	    g.Rewind(mark)
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies the accumulated gradients to all parameters in place.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Call it before each backward pass: gradients accumulate otherwise.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

