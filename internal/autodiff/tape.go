package autodiff

import "fmt"

// Mark records a position in the arena.
//
// Usage:
//
//	mark := g.Mark()
//	// ... build the per-iteration graph, Backward, update parameters ...
//	g.Rewind(mark)
type Mark struct {
	n int
}

// Mark returns the current end of the arena. Nodes created before the mark
// (typically model parameters) survive a later Rewind.
func (g *Graph) Mark() Mark {
	return Mark{n: len(g.nodes)}
}

// Rewind discards every node created after m.
//
// Handles to discarded nodes become stale: using them panics, even after new
// nodes reuse their ids. Rewinding to a mark taken before an earlier Rewind
// truncated the arena below it panics.
func (g *Graph) Rewind(m Mark) {
	if m.n > len(g.nodes) {
		panic(fmt.Sprintf("autodiff: rewind to %d past arena end %d", m.n, len(g.nodes)))
	}
	clear(g.nodes[m.n:])
	g.nodes = g.nodes[:m.n]
	g.gen++
}

// Since returns the number of nodes created after m.
func (g *Graph) Since(m Mark) int {
	return len(g.nodes) - m.n
}
