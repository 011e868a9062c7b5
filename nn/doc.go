// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on scalar autodiff values.
//
// # Overview
//
// This package contains:
//   - Neuron: act(b + Σ w_i*x_i), weights uniform in [-1, 1), bias 0
//   - Layer: independent neurons sharing one input
//   - MLP: layers chained input to output
//   - Activations: Tanh (default), ReLU, LeakyReLU, Linear
//   - Loss functions: MSE
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.WithSeed(42))
//
//	    out, err := model.Predict([]float64{2, 3, -1})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    loss, _ := nn.MSEFloats([]float64{1}, out)
//	    loss.Backward()
//	    model.Update(0.1)
//	}
//
// # Labels
//
// Parameters carry diagnostic labels: layer i is "L<i>", neuron j of that
// layer is "L<i>-N<j>", and its weights and bias are "L<i>-N<j>-w<k>" and
// "L<i>-N<j>-b". Predict labels its inputs "i<k>".
//
// # Errors
//
// Input length mismatches return a *ShapeError matching ErrShapeMismatch;
// an empty loss input returns ErrEmptyBatch. Non-positive dimensions passed
// to constructors panic.
package nn
