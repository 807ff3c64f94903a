package graph

import "github.com/google/uuid"

// CheckValid asserts every structural invariant from the data model:
// every tensor's source and targets reference operators actually in the
// graph and are not both empty; every operator's inputs/outputs reference
// tensors in the graph; every operator's predecessors/successors
// reference operators in the graph; and no two tensors share a fuid.
// Ported from GraphObj::checkValid.
func (g *Graph) CheckValid() error {
	for id, t := range g.tensors {
		if t.Source == uuid.Nil && len(t.Targets) == 0 {
			return fmtErr("CheckValid: tensor %s has neither source nor targets", id)
		}
		if t.Source != uuid.Nil {
			if _, ok := g.operators[t.Source]; !ok {
				return fmtErr("CheckValid: tensor %s source %s not in graph", id, t.Source)
			}
		}
		for _, target := range t.Targets {
			if _, ok := g.operators[target]; !ok {
				return fmtErr("CheckValid: tensor %s target %s not in graph", id, target)
			}
		}
	}

	for guid, op := range g.operators {
		for _, in := range op.Inputs {
			if _, ok := g.tensors[in]; !ok {
				return fmtErr("CheckValid: operator %s input %s not in graph", guid, in)
			}
		}
		for _, out := range op.Outputs {
			if _, ok := g.tensors[out]; !ok {
				return fmtErr("CheckValid: operator %s output %s not in graph", guid, out)
			}
		}
		for _, pred := range op.Predecessors() {
			if _, ok := g.operators[pred]; !ok {
				return fmtErr("CheckValid: operator %s predecessor %s not in graph", guid, pred)
			}
		}
		for _, succ := range op.Successors() {
			if _, ok := g.operators[succ]; !ok {
				return fmtErr("CheckValid: operator %s successor %s not in graph", guid, succ)
			}
		}
	}

	// map keys already guarantee distinct fuids/guids; nothing further to check.
	return nil
}
