package graph

import "github.com/google/uuid"

// TopoSort rearranges the operator list so every operator appears after
// every producer of its inputs, using a Kahn-style fixpoint: repeatedly
// scan operators not yet emitted, emit any whose every input either has
// no source or whose source is already emitted, stop when a full pass
// makes no progress. Among ready operators in a pass, emission follows
// current list order, so the result is deterministic for a given input
// graph. Ported from GraphObj::topo_sort.
//
// Returns an error and leaves the graph untouched if a cycle prevents all
// operators from being emitted.
func (g *Graph) TopoSort() error {
	if g.sorted {
		return nil
	}

	emitted := make(map[uuid.UUID]bool, len(g.opOrder))
	order := make([]uuid.UUID, 0, len(g.opOrder))

	for len(order) < len(g.opOrder) {
		progressed := false
		for _, id := range g.opOrder {
			if emitted[id] {
				continue
			}
			op := g.operators[id]
			ready := true
			for _, in := range op.Inputs {
				t := g.tensors[in]
				if t.Source != uuid.Nil && !emitted[t.Source] {
					ready = false
					break
				}
			}
			if ready {
				order = append(order, id)
				emitted[id] = true
				progressed = true
			}
		}
		if !progressed {
			return fmtErr("TopoSort: cycle detected, graph left unchanged")
		}
	}

	g.opOrder = order
	g.sorted = true
	return nil
}
