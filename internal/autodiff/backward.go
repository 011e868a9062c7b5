package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// Topo returns every node reachable from v in topological order: each node
// appears after all of its predecessors, and v is last.
//
// The traversal is a depth-first post-order walk that visits each node once,
// deduplicated by identity. It uses an explicit stack so deep graphs do not
// grow the goroutine stack.
func (v Value) Topo() []Value {
	v.node()
	g := v.g
	ids := g.topo(v.id)
	out := make([]Value, len(ids))
	for i, id := range ids {
		out[i] = g.handle(id)
	}
	return out
}

// frame is one entry of the explicit DFS stack.
type frame struct {
	id   int32
	next int // index of the next operand slot to visit
}

func (g *Graph) topo(root int32) []int32 {
	visited := make(map[int32]struct{})
	var order []int32

	visited[root] = struct{}{}
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(g.nodes[top.id].prev) {
			child := g.nodes[top.id].prev[top.next]
			top.next++
			if child == noOperand {
				continue
			}
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			stack = append(stack, frame{id: child})
			continue
		}
		// All predecessors emitted: emit the node itself.
		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}
	return order
}

// Backward computes d(v)/d(node) for every node reachable from v.
//
// Algorithm:
//  1. Sort the reachable nodes topologically (Topo)
//  2. Set v's gradient to 1
//  3. Walk the order in reverse, applying each node's local derivative rule
//     once and adding the contributions to its operands' gradients
//
// Reverse order guarantees that every consumer of a node has pushed its
// contribution before the node's own rule reads its gradient.
//
// Gradients accumulate: calling Backward twice over overlapping graphs adds
// up unless ZeroGrad is called in between.
func (v Value) Backward() {
	v.node()
	g := v.g
	order := g.topo(v.id)

	g.nodes[v.id].grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		g.propagate(id)
		if g.hook != nil {
			g.hook(g.handle(id))
		}
	}
}

// propagate applies one node's local derivative rule.
func (g *Graph) propagate(id int32) {
	n := &g.nodes[id]
	if n.op == ops.Leaf {
		return
	}

	x := g.nodes[n.prev[0]].data
	var y float64
	if n.prev[1] != noOperand {
		y = g.nodes[n.prev[1]].data
	}

	dx, dy := ops.RuleFor(n.op).Partials(x, y, n.data, n.arg)
	g.nodes[n.prev[0]].grad += dx * n.grad
	if n.prev[1] != noOperand {
		g.nodes[n.prev[1]].grad += dy * n.grad
	}
}

// ZeroGradAll resets the gradient of v and every node reachable from it.
func (v Value) ZeroGradAll() {
	v.node()
	for _, id := range v.g.topo(v.id) {
		v.g.nodes[id].grad = 0
	}
}
