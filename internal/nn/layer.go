package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a row of independent neurons applied to the same input.
//
// Neuron i is labelled "<label>-N<i>".
type Layer struct {
	label   string
	neurons []*Neuron
}

// NewLayer creates a layer of numberOfOutputs neurons, each taking
// numberOfInputs values.
//
// Panics if either dimension is not positive.
func NewLayer(g *autodiff.Graph, numberOfInputs, numberOfOutputs int, label string, opts ...Option) *Layer {
	return newLayer(g, numberOfInputs, numberOfOutputs, label, newConfig(opts))
}

func newLayer(g *autodiff.Graph, numberOfInputs, numberOfOutputs int, label string, cfg *config) *Layer {
	mustPositive("number of inputs", numberOfInputs)
	mustPositive("number of outputs", numberOfOutputs)

	l := &Layer{
		label:   label,
		neurons: make([]*Neuron, numberOfOutputs),
	}
	for i := range l.neurons {
		l.neurons[i] = newNeuron(g, numberOfInputs, fmt.Sprintf("%s-N%d", label, i), cfg)
	}
	return l
}

// Forward applies every neuron to x and returns their outputs in order.
func (l *Layer) Forward(x []autodiff.Value) ([]autodiff.Value, error) {
	out := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		v, err := n.Forward(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Parameters returns the parameters of every neuron, neuron by neuron.
func (l *Layer) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of every neuron.
func (l *Layer) ZeroGrad() { zeroGrad(l) }

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron { return l.neurons }

// Label returns the layer's label.
func (l *Layer) Label() string { return l.label }

// NumInputs returns the input width.
func (l *Layer) NumInputs() int { return l.neurons[0].NumInputs() }

// NumOutputs returns the number of neurons.
func (l *Layer) NumOutputs() int { return len(l.neurons) }

func (l *Layer) String() string {
	lines := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		lines[i] = n.String()
	}
	return "\n------------- Layer ---------------\n" + strings.Join(lines, "\n")
}
