package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// MLP is a multi-layer perceptron: layers chained so that each layer's
// output is the next layer's input.
//
// Layer i is labelled "L<i>" and maps sizes[i] inputs to sizes[i+1]
// outputs, where sizes = [numberOfInputs] + layerSizes.
//
// Example:
//
//	g := autodiff.NewGraph()
//	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.WithSeed(42))
//
//	mark := g.Mark()
//	out, err := model.Predict([]float64{2, 3, -1})
//	...
//	g.Rewind(mark)
type MLP struct {
	g      *autodiff.Graph
	layers []*Layer
}

// NewMLP creates an MLP whose parameters live in g.
//
// Options apply to every neuron; with WithSeed the whole network draws from
// one random stream, so equal seeds give equal networks.
//
// Panics if g is nil, layerSizes is empty or any dimension is not positive.
func NewMLP(g *autodiff.Graph, numberOfInputs int, layerSizes []int, opts ...Option) *MLP {
	if g == nil {
		panic("nn: NewMLP requires a graph")
	}
	if len(layerSizes) == 0 {
		panic("nn: NewMLP requires at least one layer")
	}
	mustPositive("number of inputs", numberOfInputs)

	cfg := newConfig(opts)
	sizes := append([]int{numberOfInputs}, layerSizes...)
	m := &MLP{
		g:      g,
		layers: make([]*Layer, len(layerSizes)),
	}
	for i := range m.layers {
		m.layers[i] = newLayer(g, sizes[i], sizes[i+1], fmt.Sprintf("L%d", i), cfg)
	}
	return m
}

// Forward runs x through every layer and returns the last layer's outputs.
func (m *MLP) Forward(x []autodiff.Value) ([]autodiff.Value, error) {
	out := x
	for i, l := range m.layers {
		var err error
		out, err = l.Forward(out)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
	}
	return out, nil
}

// Predict lifts x to leaves labelled "i<k>" and runs Forward.
func (m *MLP) Predict(x []float64) ([]autodiff.Value, error) {
	in := make([]autodiff.Value, len(x))
	for k, v := range x {
		in[k] = m.g.LeafLabeled(v, fmt.Sprintf("i%d", k))
	}
	return m.Forward(in)
}

// PredictBatch runs Predict on every sample.
func (m *MLP) PredictBatch(xs [][]float64) ([][]autodiff.Value, error) {
	out := make([][]autodiff.Value, len(xs))
	for i, x := range xs {
		pred, err := m.Predict(x)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		out[i] = pred
	}
	return out, nil
}

// Update moves every parameter against its gradient: data -= lr * grad.
func (m *MLP) Update(lr float64) {
	autodiff.Descend(m.Parameters(), lr)
}

// Parameters returns every parameter, layer by layer.
func (m *MLP) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradient of every parameter.
func (m *MLP) ZeroGrad() { zeroGrad(m) }

// Graph returns the graph holding the parameters.
func (m *MLP) Graph() *autodiff.Graph { return m.g }

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer { return m.layers }

// NumInputs returns the input width of the first layer.
func (m *MLP) NumInputs() int { return m.layers[0].NumInputs() }

// NumOutputs returns the output width of the last layer.
func (m *MLP) NumOutputs() int { return m.layers[len(m.layers)-1].NumOutputs() }

func (m *MLP) String() string {
	var sb strings.Builder
	sb.WriteString("MLP ================")
	for _, l := range m.layers {
		sb.WriteString(l.String())
	}
	sb.WriteString("\n==========================================\n")
	return sb.String()
}
