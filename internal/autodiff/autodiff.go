// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every scalar lives in a Graph arena and is addressed through a Value handle.
// Operators on a Value append a new node to the arena that records its
// operation kind and operand handles; Backward walks the recorded graph in
// reverse topological order and applies each operation's local derivative.
//
// Architecture:
//   - Graph: arena of nodes, append-only between Mark and Rewind
//   - Value: {graph, id, generation} handle; identity is the id, never the data
//   - ops.Kind: operation tag stored per node, dispatched on during Backward
//   - Operands always reference earlier nodes, so the graph is acyclic by construction
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Leaf(3.0)
//	y := x.Mul(x).Add(x.Mul(x)) // y = 2x²
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 4x = 12
package autodiff

import (
	"fmt"
	"math"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// noOperand marks an unused operand slot.
const noOperand = -1

// node is the arena record behind a Value.
type node struct {
	data  float64
	grad  float64
	arg   float64  // Pow exponent or LeakyReLU slope
	prev  [2]int32 // operand ids, noOperand when unused
	op    ops.Kind // operation that produced this node
	gen   uint32   // arena generation the node was created in
	label string   // diagnostics only
}

// Graph is an arena holding every node of one or more computation graphs.
//
// A Graph is not safe for concurrent use; the engine is single-threaded and
// nodes are never mutated concurrently.
type Graph struct {
	nodes []node
	gen   uint32
	hook  func(Value)
}

// GraphOption configures a Graph.
type GraphOption func(*Graph)

// WithBackwardHook registers fn to be called right after each node's local
// derivative rule has run during Backward, in execution order.
func WithBackwardHook(fn func(Value)) GraphOption {
	return func(g *Graph) {
		g.hook = fn
	}
}

// WithCapacity pre-allocates room for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		g.nodes = make([]node, 0, n)
	}
}

// NewGraph creates an empty arena.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.nodes == nil {
		g.nodes = make([]node, 0, 64) // Pre-allocate for common case
	}
	return g
}

// Len returns the number of live nodes in the arena.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Leaf creates a node holding x with no operands and an empty op tag.
func (g *Graph) Leaf(x float64) Value {
	return g.push(node{data: x, prev: [2]int32{noOperand, noOperand}, op: ops.Leaf})
}

// LeafLabeled is Leaf with a diagnostic label.
func (g *Graph) LeafLabeled(x float64, label string) Value {
	v := g.Leaf(x)
	g.nodes[v.id].label = label
	return v
}

// NewValue converts x to float64 and creates a leaf for it.
//
// It fails with a *ConversionError when x is not a number or cannot be
// represented exactly as a 64-bit float.
func (g *Graph) NewValue(x any) (Value, error) {
	f, err := ToFloat64(x)
	if err != nil {
		return Value{}, err
	}
	return g.Leaf(f), nil
}

// Leaves creates one leaf per element of xs.
func (g *Graph) Leaves(xs []float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = g.Leaf(x)
	}
	return out
}

// ZeroGrad resets the gradient of every live node in the arena.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// push appends n to the arena and returns its handle.
func (g *Graph) push(n node) Value {
	if len(g.nodes) >= math.MaxInt32 {
		panic("autodiff: graph arena is full")
	}
	n.gen = g.gen
	id := int32(len(g.nodes))
	g.nodes = append(g.nodes, n)
	return Value{g: g, id: id, gen: g.gen}
}

// unary records op applied to x.
func (g *Graph) unary(op ops.Kind, x Value, arg float64) Value {
	out := ops.RuleFor(op).Forward(x.node().data, 0, arg)
	return g.push(node{data: out, arg: arg, prev: [2]int32{x.id, noOperand}, op: op})
}

// binary records op applied to x and y.
func (g *Graph) binary(op ops.Kind, x, y Value) Value {
	out := ops.RuleFor(op).Forward(x.node().data, y.node().data, 0)
	return g.push(node{data: out, prev: [2]int32{x.id, y.id}, op: op})
}

// Value is a handle to a scalar node in a Graph.
//
// Values are small and are passed by value. Two Values are equal exactly when
// they refer to the same node; nodes holding equal data are still distinct.
// The zero Value is invalid.
type Value struct {
	g   *Graph
	id  int32
	gen uint32
}

// node returns the arena record, panicking on invalid or stale handles.
func (v Value) node() *node {
	if v.g == nil {
		panic("autodiff: use of zero Value")
	}
	if int(v.id) >= len(v.g.nodes) || v.g.nodes[v.id].gen != v.gen {
		panic(fmt.Sprintf("autodiff: stale Value %d (graph was rewound past it)", v.id))
	}
	return &v.g.nodes[v.id]
}

// IsValid reports whether v refers to a live node.
func (v Value) IsValid() bool {
	return v.g != nil && int(v.id) < len(v.g.nodes) && v.g.nodes[v.id].gen == v.gen
}

// Graph returns the arena v belongs to.
func (v Value) Graph() *Graph {
	return v.g
}

// ID returns the node's unique identity within its graph.
func (v Value) ID() int64 {
	return int64(v.id)
}

// Data returns the node's value.
func (v Value) Data() float64 {
	return v.node().data
}

// SetData overwrites the node's value. Only parameters should be mutated this
// way, between a backward pass and the next forward pass.
func (v Value) SetData(x float64) {
	v.node().data = x
}

// Grad returns the accumulated gradient.
func (v Value) Grad() float64 {
	return v.node().grad
}

// ZeroGrad resets this node's gradient only.
func (v Value) ZeroGrad() {
	v.node().grad = 0
}

// Label returns the diagnostic label.
func (v Value) Label() string {
	return v.node().label
}

// SetLabel sets the diagnostic label and returns v for chaining.
func (v Value) SetLabel(label string) Value {
	v.node().label = label
	return v
}

// Op returns the kind of operation that produced the node.
func (v Value) Op() ops.Kind {
	return v.node().op
}

// OpTag returns the printable op tag ("" for leaves, "**2" for squares).
func (v Value) OpTag() string {
	n := v.node()
	return ops.Tag(n.op, n.arg)
}

// Prev returns the node's direct predecessors.
//
// Duplicates are removed, so x*x reports x once.
func (v Value) Prev() []Value {
	n := v.node()
	var out []Value
	for _, id := range n.prev {
		if id == noOperand || (len(out) == 1 && out[0].id == id) {
			continue
		}
		out = append(out, v.g.handle(id))
	}
	return out
}

// handle rebuilds the Value for a live node id.
func (g *Graph) handle(id int32) Value {
	return Value{g: g, id: id, gen: g.nodes[id].gen}
}

// String describes the node the way diagnostics print it.
func (v Value) String() string {
	if !v.IsValid() {
		return "Value(invalid)"
	}
	n := v.node()
	return fmt.Sprintf("Value(label: %s | data=%g, grad=%g, op=%s)", n.label, n.data, n.grad, ops.Tag(n.op, n.arg))
}
