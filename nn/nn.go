// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module is anything exposing trainable parameters.
type Module = nn.Module

// Neuron computes act(b + Σ w_i*x_i).
type Neuron = nn.Neuron

// Layer is a row of neurons applied to the same input.
type Layer = nn.Layer

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// Option configures module construction.
type Option = nn.Option

// Activation selects a neuron's nonlinearity.
type Activation = nn.Activation

// ShapeError reports an input of the wrong length.
type ShapeError = nn.ShapeError

// Activations.
const (
	Tanh      = nn.Tanh
	ReLU      = nn.ReLU
	LeakyReLU = nn.LeakyReLU
	Linear    = nn.Linear
)

// Errors.
var (
	ErrShapeMismatch = nn.ErrShapeMismatch
	ErrEmptyBatch    = nn.ErrEmptyBatch
)

// NewNeuron creates a neuron with numberOfInputs weights in g.
func NewNeuron(g *autodiff.Graph, numberOfInputs int, label string, opts ...Option) *Neuron {
	return nn.NewNeuron(g, numberOfInputs, label, opts...)
}

// NewLayer creates a layer of numberOfOutputs neurons.
func NewLayer(g *autodiff.Graph, numberOfInputs, numberOfOutputs int, label string, opts ...Option) *Layer {
	return nn.NewLayer(g, numberOfInputs, numberOfOutputs, label, opts...)
}

// NewMLP creates a multi-layer perceptron.
//
// Example:
//
//	g := autodiff.NewGraph()
//	model := nn.NewMLP(g, 3, []int{4, 4, 1})
func NewMLP(g *autodiff.Graph, numberOfInputs int, layerSizes []int, opts ...Option) *MLP {
	return nn.NewMLP(g, numberOfInputs, layerSizes, opts...)
}

// WithSeed makes weight initialization reproducible.
func WithSeed(seed int64) Option {
	return nn.WithSeed(seed)
}

// WithRand draws initial weights from r.
func WithRand(r *rand.Rand) Option {
	return nn.WithRand(r)
}

// WithActivation selects the activation of every neuron.
func WithActivation(act Activation) Option {
	return nn.WithActivation(act)
}

// ParseActivation maps a name such as "relu" to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Loss functions

// MSE returns Σ (prediction_i - target_i)**2.
func MSE(target, prediction []autodiff.Value) (autodiff.Value, error) {
	return nn.MSE(target, prediction)
}

// MSEFloats returns MSE with constant targets.
func MSEFloats(target []float64, prediction []autodiff.Value) (autodiff.Value, error) {
	return nn.MSEFloats(target, prediction)
}
