package graph

import (
	"github.com/google/uuid"
	"github.com/tessera-ml/tessera/internal/operator"
	"github.com/tessera-ml/tessera/internal/tensor"
)

// AddTensor creates a fresh graph-input tensor, assigns it a new fuid,
// appends it to the tensor list, and returns it.
func (g *Graph) AddTensor(shape tensor.Shape, dtype tensor.DType) (*tensor.Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmtErr("AddTensor: %w", err)
	}
	t := tensor.New(shape, dtype)
	t.SetRuntime(g.rt.Name())
	g.tensors[t.FUID] = t
	g.tensorOrder = append(g.tensorOrder, t.FUID)
	return t, nil
}

// AdoptTensor inserts a tensor created elsewhere (e.g. by a factory helper
// per the "fluent operator construction" design note) into the graph.
// Rejected if the tensor was created against a different runtime, or if
// its fuid already exists in this graph.
func (g *Graph) AdoptTensor(t *tensor.Tensor) error {
	if t.Runtime() != "" && t.Runtime() != g.rt.Name() {
		return fmtErr("AdoptTensor: tensor runtime %q does not match graph runtime %q", t.Runtime(), g.rt.Name())
	}
	if _, exists := g.tensors[t.FUID]; exists {
		return fmtErr("AdoptTensor: duplicate fuid %s", t.FUID)
	}
	t.SetRuntime(g.rt.Name())
	g.tensors[t.FUID] = t
	g.tensorOrder = append(g.tensorOrder, t.FUID)
	return nil
}

// AddOperator appends a new operator of the given kind and attributes,
// consuming inputs and producing outputs (both pre-declared via
// AddTensor), and establishes bidirectional links: each input gains this
// operator in its targets, each output has its source set to this
// operator, and predecessor/successor sets are computed from already-
// present sources and targets. Setting sorted = false is mandatory on any
// structural mutation, including this one.
//
// Ported from addOperatorAndConnect: this module accepts pre-declared
// output tensors instead of the source's fluent operator constructors
// reaching back into the graph to allocate them.
func (g *Graph) AddOperator(kind operator.Kind, attrs operator.Attrs, inputs, outputs []uuid.UUID) (*operator.Operator, error) {
	for _, id := range inputs {
		if _, ok := g.tensors[id]; !ok {
			return nil, fmtErr("AddOperator: input tensor %s not in graph", id)
		}
	}
	for _, id := range outputs {
		out, ok := g.tensors[id]
		if !ok {
			return nil, fmtErr("AddOperator: output tensor %s not in graph", id)
		}
		if out.Source != uuid.Nil {
			return nil, fmtErr("AddOperator: output tensor %s already has a source operator", id)
		}
	}

	op := operator.New(kind, attrs, inputs, outputs)
	g.operators[op.GUID] = op
	g.opOrder = append(g.opOrder, op.GUID)
	g.sorted = false

	for _, id := range inputs {
		in := g.tensors[id]
		in.AddTarget(op.GUID)
		if pred := in.Source; pred != uuid.Nil {
			if predOp, ok := g.operators[pred]; ok {
				predOp.AddSuccessor(op.GUID)
				op.AddPredecessor(pred)
			}
		}
	}
	for _, id := range outputs {
		out := g.tensors[id]
		out.Source = op.GUID
		for _, succ := range out.Targets {
			if succOp, ok := g.operators[succ]; ok {
				succOp.AddPredecessor(op.GUID)
				op.AddSuccessor(succ)
			}
		}
	}
	return op, nil
}

// RemoveTensor drops a tensor from the graph's tensor list without
// touching any operator link. Callers responsible for a structural
// mutation (e.g. an optimizer pass) must detach the tensor from every
// operator first.
func (g *Graph) RemoveTensor(fuid uuid.UUID) {
	if _, ok := g.tensors[fuid]; !ok {
		return
	}
	delete(g.tensors, fuid)
	g.tensorOrder = removeID(g.tensorOrder, fuid)
}

// RemoveOperator detaches op from its predecessors' and successors'
// adjacency sets, then removes it from the operator list. It does not
// touch the tensors op was connected to; callers must unlink those
// separately, mirroring removeOperatorfromGraph plus the caller-side
// tensor surgery of the optimizer passes it's grounded on.
func (g *Graph) RemoveOperator(guid uuid.UUID) {
	op, ok := g.operators[guid]
	if !ok {
		return
	}
	for _, predID := range op.Predecessors() {
		if pred, ok := g.operators[predID]; ok {
			pred.RemoveSuccessor(guid)
		}
	}
	for _, succID := range op.Successors() {
		if succ, ok := g.operators[succID]; ok {
			succ.RemovePredecessor(guid)
		}
	}
	delete(g.operators, guid)
	g.opOrder = removeID(g.opOrder, guid)
	g.sorted = false
}

// GetInputs returns the tensors with no producing operator, in tensor-list
// order.
func (g *Graph) GetInputs() []*tensor.Tensor {
	var out []*tensor.Tensor
	for _, id := range g.tensorOrder {
		if t := g.tensors[id]; t.IsGraphInput() {
			out = append(out, t)
		}
	}
	return out
}

// GetOutputs returns the tensors with no consuming operator, in
// tensor-list order.
func (g *Graph) GetOutputs() []*tensor.Tensor {
	var out []*tensor.Tensor
	for _, id := range g.tensorOrder {
		if t := g.tensors[id]; t.IsGraphOutput() {
			out = append(out, t)
		}
	}
	return out
}
