package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// runTrace builds o = tanh(x1*w1 + x2*w2 + b), runs Backward and lists every
// node and edge, which is everything a graph renderer needs.
func runTrace(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("trace", flag.ContinueOnError)
	fs.SetOutput(w)
	x1 := fs.Float64("x1", 2.0, "First input")
	x2 := fs.Float64("x2", 0.0, "Second input")
	w1 := fs.Float64("w1", -3.0, "First weight")
	w2 := fs.Float64("w2", 1.0, "Second weight")
	b := fs.Float64("b", 6.8813735870195432, "Bias")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g := autodiff.NewGraph()
	vx1 := g.LeafLabeled(*x1, "x1")
	vx2 := g.LeafLabeled(*x2, "x2")
	vw1 := g.LeafLabeled(*w1, "w1")
	vw2 := g.LeafLabeled(*w2, "w2")
	vb := g.LeafLabeled(*b, "b")

	x1w1 := vx1.Mul(vw1).SetLabel("x1*w1")
	x2w2 := vx2.Mul(vw2).SetLabel("x2*w2")
	n := x1w1.Add(x2w2).SetLabel("x1*w1 + x2*w2").Add(vb).SetLabel("n")
	o := n.Tanh().SetLabel("o")
	o.Backward()

	nodes, edges := autodiff.Trace(o)
	fmt.Fprintf(w, "Nodes (%d):\n", len(nodes))
	for _, v := range nodes {
		fmt.Fprintf(w, "  #%-2d %-14s data %9.4f  grad %9.4f  %s\n",
			v.ID(), v.Label(), v.Data(), v.Grad(), v.OpTag())
	}
	fmt.Fprintf(w, "Edges (%d):\n", len(edges))
	for _, e := range edges {
		fmt.Fprintf(w, "  %s -> %s\n", e.From.Label(), e.To.Label())
	}
	return nil
}
