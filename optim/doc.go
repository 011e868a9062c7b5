// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient descent, param -= lr * grad
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	    "github.com/born-ml/micrograd/optim"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    model := nn.NewMLP(g, 3, []int{4, 4, 1})
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	    mark := g.Mark()
//	    for range 50 {
//	        loss := computeLoss(model)
//	        optimizer.ZeroGrad()
//	        loss.Backward()
//	        optimizer.Step()
//	        g.Rewind(mark)
//	    }
//	}
//
// # Gradient accumulation
//
// Step never clears gradients. Skipping ZeroGrad between steps adds the new
// gradients to the old ones.
package optim
