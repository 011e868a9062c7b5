package autodiff

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Edge connects a predecessor to the node computed from it.
type Edge struct {
	From Value // operand
	To   Value // consumer
}

// Trace collects the nodes and edges reachable from root.
//
// Nodes come back in topological order; edges are deduplicated, so x*x
// contributes a single x → out edge. The result is enough to rebuild the
// whole DAG without touching the derivative rules.
func Trace(root Value) (nodes []Value, edges []Edge) {
	nodes = root.Topo()
	for _, n := range nodes {
		for _, p := range n.Prev() {
			edges = append(edges, Edge{From: p, To: n})
		}
	}
	return nodes, edges
}

// DAG exports the graph reachable from root as a gonum directed graph.
//
// Graph node IDs are Value IDs and every node is the Value itself, so callers
// can type-assert back to Value to read labels, data, gradients and op tags.
// Edges point from operands to consumers.
func DAG(root Value) *simple.DirectedGraph {
	nodes, edges := Trace(root)
	dag := simple.NewDirectedGraph()
	for _, n := range nodes {
		dag.AddNode(n)
	}
	for _, e := range edges {
		dag.SetEdge(dag.NewEdge(e.From, e.To))
	}
	return dag
}

var _ graph.Node = Value{}
