package graph

import (
	"github.com/google/uuid"
	"github.com/tessera-ml/tessera/internal/operator"
	"github.com/tessera-ml/tessera/internal/tensor"
)

// Optimize runs the algebraic-simplification passes to a fixpoint: each
// pass is a pure function over the graph that reports whether it changed
// anything; the driver repeats both passes until a full round changes
// nothing. Ported from GraphObj::optimize's while(optimized) loop.
//
// Each rewrite either removes Transpose operators or moves a MatMul input
// one Transpose further upstream (a shared Transpose stays in place for its
// other consumers), so the loop terminates. Marks the graph unsorted
// when done, since rewrites may have changed operator adjacency.
func (g *Graph) Optimize() error {
	for {
		changed, err := g.removeRedundantTranspose()
		if err != nil {
			return fmtErr("Optimize: %w", err)
		}
		changedFuse, err := g.fuseTransposeIntoMatmul()
		if err != nil {
			return fmtErr("Optimize: %w", err)
		}
		if !changed && !changedFuse {
			break
		}
	}
	g.sorted = false
	return nil
}

// reconnectTensors redirects every current consumer of to onto from:
// each such operator's input list is rewritten from `to` to `from`, and
// it moves from to's target list onto from's. from's own current targets
// (which belong to the operator about to be removed) are cleared first.
// If from has a producing operator, that operator and each moved consumer
// are linked as predecessor/successor.
// Ported from GraphObj::reconnectTensors — note the source names its
// parameters so that callers pass the surviving upstream tensor as `from`
// and the tensor being spliced out as `to`.
func (g *Graph) reconnectTensors(from, to *tensor.Tensor) {
	targets := append([]uuid.UUID(nil), to.Targets...)
	from.Targets = nil
	for _, opID := range targets {
		op := g.operators[opID]
		replaceInput(op, to.FUID, from.FUID)
		from.AddTarget(opID)
		to.RemoveTarget(opID)
		if sourceOp, ok := g.operators[from.Source]; ok {
			sourceOp.AddSuccessor(opID)
			op.AddPredecessor(from.Source)
		}
	}
}

// replaceInput rewrites every occurrence of oldID in op's input list with
// newID.
func replaceInput(op *operator.Operator, oldID, newID uuid.UUID) {
	for i, in := range op.Inputs {
		if in == oldID {
			op.Inputs[i] = newID
		}
	}
}

// replaceOperator substitutes newOp for oldOp in the operator list and
// rewires every tensor link: oldOp is detached from every input it used
// to have, newOp is attached to every input it actually has (which may
// differ — a fusion's whole point is that one input changes), and
// outputs' source is repointed to newOp. Ported from
// GraphObj::replaceOperator, with one deliberate correction: the source
// updates target links by iterating oldOp's original input list even for
// inputs newOp does not keep, which leaves a stale target reference to
// the just-deleted oldOp on any tensor a fusion drops (e.g. the surviving
// transposed tensor when only its untransposed source is fused in).
// Splitting detach-from-old and attach-to-new into separate loops keyed
// on each operator's own input list avoids that stale reference so
// CheckValid's target-membership invariant holds after a fusion.
func (g *Graph) replaceOperator(oldOp, newOp *operator.Operator) {
	for i, id := range g.opOrder {
		if id == oldOp.GUID {
			g.opOrder[i] = newOp.GUID
			break
		}
	}
	for _, predID := range oldOp.Predecessors() {
		if pred, ok := g.operators[predID]; ok {
			pred.RemoveSuccessor(oldOp.GUID)
		}
	}
	for _, succID := range oldOp.Successors() {
		if succ, ok := g.operators[succID]; ok {
			succ.RemovePredecessor(oldOp.GUID)
		}
	}
	delete(g.operators, oldOp.GUID)
	g.operators[newOp.GUID] = newOp

	for _, inID := range oldOp.Inputs {
		if in, ok := g.tensors[inID]; ok {
			in.RemoveTarget(oldOp.GUID)
		}
	}
	for _, inID := range newOp.Inputs {
		in := g.tensors[inID]
		in.AddTarget(newOp.GUID)
		if source := in.Source; source != uuid.Nil {
			if sourceOp, ok := g.operators[source]; ok {
				sourceOp.AddSuccessor(newOp.GUID)
				newOp.AddPredecessor(source)
			}
		}
	}
	for _, outID := range newOp.Outputs {
		out := g.tensors[outID]
		out.Source = newOp.GUID
		for _, targetID := range out.Targets {
			if targetOp, ok := g.operators[targetID]; ok {
				targetOp.AddPredecessor(newOp.GUID)
				newOp.AddSuccessor(targetID)
			}
		}
	}
}
