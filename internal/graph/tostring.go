package graph

import (
	"fmt"
	"strings"
)

// String renders a textual diagnostic dump: every tensor, then every
// operator with its guid, ordered predecessor guids, ordered successor
// guids, and a kind-specific descriptor. Structure, not exact spacing or
// punctuation, is the contract — mirrors GraphObj::toString.
func (g *Graph) String() string {
	var b strings.Builder

	b.WriteString("Graph Tensors:\n")
	for _, id := range g.tensorOrder {
		fmt.Fprintf(&b, "%s\n", g.tensors[id])
	}

	b.WriteString("Graph operators:\n")
	for _, id := range g.opOrder {
		op := g.operators[id]
		fmt.Fprintf(&b, "OP %s, pred %v, succ %v, %s\n", op.GUID, op.Predecessors(), op.Successors(), op)
	}
	return b.String()
}
