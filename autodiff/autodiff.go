// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Every scalar is a Value handle into a Graph arena. Arithmetic on Values
// records new nodes; Backward on any Value fills in the gradient of that
// Value with respect to every node it depends on.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    p := g.Leaf(1.0)
//	    q := p.MulScalar(2).AddScalar(3) // q = 2p + 3
//	    q.Backward()
//	    fmt.Println(q.Data(), p.Grad()) // 5 2
//	}
//
// Training loops mark the arena once the parameters exist and rewind it after
// every step, so per-iteration nodes never accumulate:
//
//	mark := g.Mark()
//	for range steps {
//	    loss := ...
//	    loss.Backward()
//	    autodiff.Descend(params, lr)
//	    g.Rewind(mark)
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is the arena owning every node.
type Graph = autodiff.Graph

// GraphOption configures a Graph.
type GraphOption = autodiff.GraphOption

// Value is a handle to one scalar node.
type Value = autodiff.Value

// Mark records an arena length for Rewind.
type Mark = autodiff.Mark

// Edge connects an operand to the node computed from it.
type Edge = autodiff.Edge

// ConversionError reports a value that cannot become a float64 exactly.
type ConversionError = autodiff.ConversionError

// Op identifies the operation that produced a node.
type Op = ops.Kind

// Operation tags.
const (
	OpLeaf      = ops.Leaf
	OpAdd       = ops.Add
	OpMul       = ops.Mul
	OpPow       = ops.Pow
	OpTanh      = ops.Tanh
	OpExp       = ops.Exp
	OpReLU      = ops.ReLU
	OpLeakyReLU = ops.LeakyReLU
)

// ErrConversion is wrapped by every ConversionError.
var ErrConversion = autodiff.ErrConversion

// NewGraph creates an empty arena.
func NewGraph(opts ...GraphOption) *Graph {
	return autodiff.NewGraph(opts...)
}

// WithBackwardHook calls fn after each node's derivative rule runs.
func WithBackwardHook(fn func(Value)) GraphOption {
	return autodiff.WithBackwardHook(fn)
}

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) GraphOption {
	return autodiff.WithCapacity(n)
}

// ToFloat64 converts a Go numeric value to float64, rejecting lossy inputs.
func ToFloat64(x any) (float64, error) {
	return autodiff.ToFloat64(x)
}

// Sum adds values left to right.
func Sum(vs []Value) Value {
	return autodiff.Sum(vs)
}

// Descend applies data -= lr * grad to every value.
func Descend(params []Value, lr float64) {
	autodiff.Descend(params, lr)
}

// GradOf returns the gradient of each value.
func GradOf(vs []Value) []float64 {
	return autodiff.GradOf(vs)
}

// DataOf returns the data of each value.
func DataOf(vs []Value) []float64 {
	return autodiff.DataOf(vs)
}

// Trace collects the nodes and edges reachable from root.
func Trace(root Value) ([]Value, []Edge) {
	return autodiff.Trace(root)
}

// DAG exports the graph reachable from root as a gonum directed graph.
func DAG(root Value) *simple.DirectedGraph {
	return autodiff.DAG(root)
}
