package operator

import "github.com/google/uuid"

// Operator is a computation node in the dataflow graph: a kind tag, typed
// attributes, ordered input/output tensor links, and predecessor/successor
// operator links maintained by the owning graph.
//
// Predecessors and successors are derived state — a Graph recomputes them
// whenever it cross-links or unlinks an operator — kept here as insertion-
// ordered sets rather than plain slices so repeated Add calls during
// relinking are idempotent without a separate membership scan.
type Operator struct {
	GUID    uuid.UUID
	Kind    Kind
	Attrs   Attrs
	Inputs  []uuid.UUID // ordered, insertion order significant
	Outputs []uuid.UUID // ordered, insertion order significant

	predecessors *idSet
	successors   *idSet
}

// New creates an operator with a fresh GUID. Inputs and outputs are copied;
// the caller's slices may be reused afterward. Predecessor/successor sets
// start empty; the owning graph populates them once the operator is
// cross-linked to its tensors.
func New(kind Kind, attrs Attrs, inputs, outputs []uuid.UUID) *Operator {
	o := &Operator{
		GUID:         uuid.New(),
		Kind:         kind,
		Attrs:        attrs,
		Inputs:       append([]uuid.UUID(nil), inputs...),
		Outputs:      append([]uuid.UUID(nil), outputs...),
		predecessors: newIDSet(),
		successors:   newIDSet(),
	}
	return o
}

// AddPredecessor records op as feeding an input of this operator.
func (o *Operator) AddPredecessor(op uuid.UUID) {
	o.predecessors.Add(op)
}

// RemovePredecessor drops op from the predecessor set.
func (o *Operator) RemovePredecessor(op uuid.UUID) {
	o.predecessors.Remove(op)
}

// Predecessors returns the operators that produce one of this operator's
// inputs, in the order they were added.
func (o *Operator) Predecessors() []uuid.UUID {
	return o.predecessors.Slice()
}

// AddSuccessor records op as consuming one of this operator's outputs.
func (o *Operator) AddSuccessor(op uuid.UUID) {
	o.successors.Add(op)
}

// RemoveSuccessor drops op from the successor set.
func (o *Operator) RemoveSuccessor(op uuid.UUID) {
	o.successors.Remove(op)
}

// Successors returns the operators that consume one of this operator's
// outputs, in the order they were added.
func (o *Operator) Successors() []uuid.UUID {
	return o.successors.Slice()
}

// String returns a short diagnostic form, e.g. "Op(a1b2...)[MatMul]".
func (o *Operator) String() string {
	return "Op(" + shortID(o.GUID) + ")[" + o.Kind.String() + "]"
}

func shortID(id uuid.UUID) string {
	s := id.String()
	if len(s) < 8 {
		return s
	}
	return s[:8]
}
