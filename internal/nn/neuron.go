package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes act(b + Σ w_i*x_i).
//
// Weights are drawn from U[-1, 1) and labelled "<label>-w<i>"; the bias
// starts at zero and is labelled "<label>-b".
//
// Example:
//
//	g := autodiff.NewGraph()
//	n := nn.NewNeuron(g, 2, "n", nn.WithSeed(1))
//	out, err := n.Forward(g.Leaves([]float64{2, 0}))
type Neuron struct {
	label string
	w     []autodiff.Value
	b     autodiff.Value
	act   Activation
}

// NewNeuron creates a neuron with numberOfInputs weights in g.
//
// Panics if numberOfInputs is not positive.
func NewNeuron(g *autodiff.Graph, numberOfInputs int, label string, opts ...Option) *Neuron {
	return newNeuron(g, numberOfInputs, label, newConfig(opts))
}

func newNeuron(g *autodiff.Graph, numberOfInputs int, label string, cfg *config) *Neuron {
	mustPositive("number of inputs", numberOfInputs)

	n := &Neuron{
		label: label,
		w:     make([]autodiff.Value, numberOfInputs),
		act:   cfg.act,
	}
	for i := range n.w {
		n.w[i] = g.LeafLabeled(cfg.uniform(), fmt.Sprintf("%s-w%d", label, i))
	}
	n.b = g.LeafLabeled(0, label+"-b")
	return n
}

// Forward returns the neuron's output for x.
//
// The sum starts from the bias and adds each w_i*x_i left to right. Returns a
// *ShapeError if len(x) differs from the number of weights.
func (n *Neuron) Forward(x []autodiff.Value) (autodiff.Value, error) {
	if len(x) != len(n.w) {
		return autodiff.Value{}, shapeError(n.label, len(n.w), len(x))
	}

	sum := n.b
	for i, w := range n.w {
		sum = sum.Add(w.Mul(x[i]))
	}
	return n.act.apply(sum), nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []autodiff.Value {
	params := make([]autodiff.Value, 0, len(n.w)+1)
	params = append(params, n.w...)
	return append(params, n.b)
}

// ZeroGrad resets the gradients of the weights and the bias.
func (n *Neuron) ZeroGrad() { zeroGrad(n) }

// Weights returns the weight parameters.
func (n *Neuron) Weights() []autodiff.Value { return n.w }

// Bias returns the bias parameter.
func (n *Neuron) Bias() autodiff.Value { return n.b }

// Label returns the neuron's label.
func (n *Neuron) Label() string { return n.label }

// NumInputs returns the number of inputs the neuron accepts.
func (n *Neuron) NumInputs() int { return len(n.w) }

// Activation returns the neuron's nonlinearity.
func (n *Neuron) Activation() Activation { return n.act }

// String lists each weight and the bias as data / grad.
func (n *Neuron) String() string {
	ws := make([]string, len(n.w))
	for i, w := range n.w {
		ws[i] = fmt.Sprintf("%g / %g", w.Data(), w.Grad())
	}
	return fmt.Sprintf("Ws: %s    b= %g / %g", strings.Join(ws, ",    "), n.b.Data(), n.b.Grad())
}
