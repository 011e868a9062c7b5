package nn

import (
	"strconv"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// Activation is the nonlinearity a neuron applies to its weighted sum.
type Activation uint8

// Supported activations.
const (
	// Tanh squashes into (-1, 1). Default for every neuron.
	Tanh Activation = iota

	// ReLU clamps negatives to zero: f(x) = max(0, x).
	ReLU

	// LeakyReLU keeps a small slope for negatives: f(x) = x > 0 ? x : 0.01*x.
	LeakyReLU

	// Linear passes the sum through unchanged.
	Linear
)

var activationNames = [...]string{
	Tanh:      "tanh",
	ReLU:      "relu",
	LeakyReLU: "lrelu",
	Linear:    "linear",
}

// String returns the activation name as accepted by ParseActivation.
func (a Activation) String() string {
	if int(a) < len(activationNames) {
		return activationNames[a]
	}
	return "Activation(" + strconv.Itoa(int(a)) + ")"
}

// ParseActivation maps a name such as "tanh" or "relu" to an Activation.
func ParseActivation(name string) (Activation, error) {
	for i, n := range activationNames {
		if strings.EqualFold(name, n) {
			return Activation(i), nil
		}
	}
	return 0, errors.Errorf("unknown activation %q", name)
}

// apply records the activation node for v.
func (a Activation) apply(v autodiff.Value) autodiff.Value {
	switch a {
	case Tanh:
		return v.Tanh()
	case ReLU:
		return v.ReLU()
	case LeakyReLU:
		return v.LeakyReLU()
	case Linear:
		return v
	default:
		panic("nn: unknown activation " + a.String())
	}
}
