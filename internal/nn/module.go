// Package nn implements neural network modules on top of the scalar autodiff engine.
//
// This package provides the building blocks of a multi-layer perceptron:
//   - Module interface: anything exposing trainable parameters
//   - Neuron: weighted sum of inputs plus bias, passed through an activation
//   - Layer: a row of independent neurons sharing the same input
//   - MLP: layers chained so that each output feeds the next layer
//   - Loss functions: MSE
//
// Every parameter is an autodiff.Value created in the model's Graph before any
// per-iteration node, so callers can Mark the graph after construction and
// Rewind it after each training step without losing weights.
package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Modules can be composed to build larger architectures:
//
//	g := autodiff.NewGraph()
//	model := nn.NewMLP(g, 3, []int{4, 4, 1})
//	params := model.Parameters() // 41 values
type Module interface {
	// Parameters returns all trainable parameters of this module, in a
	// stable order: weights before bias, neuron by neuron, layer by layer.
	Parameters() []autodiff.Value

	// ZeroGrad resets the gradient of every parameter.
	ZeroGrad()
}

var (
	_ Module = (*Neuron)(nil)
	_ Module = (*Layer)(nil)
	_ Module = (*MLP)(nil)
)

// zeroGrad resets the gradient of every parameter of m.
func zeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
