package tensor

import (
	"fmt"

	"github.com/google/uuid"
)

// Storage binds a tensor to a byte range of the allocator's arena, assigned
// once memory planning has run. Offset and Bytes are relative to the
// arena's base; a caller slices the arena's backing buffer to materialize
// the tensor's actual memory.
type Storage struct {
	Offset uint64
	Bytes  uint64
}

// Tensor is a node in the dataflow graph: it carries shape and dtype, a
// globally unique identity, the single operator that produces it (or the
// zero UUID if it is a graph input), the ordered list of operators that
// consume it, and — once planning has run — its storage binding.
//
// Tensor and Operator are mutually referential in the source this module is
// grounded on. Rather than hold pointers to each other (which Go's package
// structure makes awkward for two independently useful types), a Tensor
// references its source and targets by operator GUID; a Graph resolves
// those GUIDs through its own index. This is the "identifier-keyed record"
// rendering of a strict single-owner design.
type Tensor struct {
	FUID    uuid.UUID
	Shape   Shape
	DType   DType
	Source  uuid.UUID   // zero UUID: no producer, this tensor is a graph input
	Targets []uuid.UUID // ordered, insertion order is significant
	Storage *Storage    // nil until DataMalloc has run

	// runtime names the runtime this tensor was created against, so a graph
	// can reject a tensor produced by a different runtime being adopted
	// into it (see Graph.AdoptTensor).
	runtime string
}

// New creates a graph-input tensor: no source, no targets yet. A fresh FUID
// is assigned; FUIDs are never reused within a graph's lifetime because
// they are randomly generated UUIDs rather than a counter that would need
// to track tensor removal.
func New(shape Shape, dtype DType) *Tensor {
	return &Tensor{
		FUID:  uuid.New(),
		Shape: shape.Clone(),
		DType: dtype,
	}
}

// Bytes returns the total storage size this tensor requires at its current
// shape and dtype.
func (t *Tensor) Bytes() uint64 {
	return uint64(t.Shape.NumElements()) * t.DType.Size()
}

// IsGraphInput reports whether this tensor has no producing operator.
func (t *Tensor) IsGraphInput() bool {
	return t.Source == uuid.Nil
}

// IsGraphOutput reports whether this tensor has no consuming operators.
func (t *Tensor) IsGraphOutput() bool {
	return len(t.Targets) == 0
}

// AddTarget appends op to the ordered target list if it is not already
// present.
func (t *Tensor) AddTarget(op uuid.UUID) {
	for _, existing := range t.Targets {
		if existing == op {
			return
		}
	}
	t.Targets = append(t.Targets, op)
}

// RemoveTarget removes op from the target list, preserving the order of
// the remaining targets. A no-op if op is not a target.
func (t *Tensor) RemoveTarget(op uuid.UUID) {
	for i, existing := range t.Targets {
		if existing == op {
			t.Targets = append(t.Targets[:i], t.Targets[i+1:]...)
			return
		}
	}
}

// Runtime returns the name of the runtime this tensor was created against.
func (t *Tensor) Runtime() string {
	return t.runtime
}

// SetRuntime tags the tensor with the name of the runtime it was created
// against. Called by Graph.AddTensor/Graph.AdoptTensor; not meant for
// general use.
func (t *Tensor) SetRuntime(name string) {
	t.runtime = name
}

// String renders a short diagnostic form, e.g. "T(a1b2...)[2 3]float32".
func (t *Tensor) String() string {
	return fmt.Sprintf("T(%s)%s%s", shortID(t.FUID), t.Shape, t.DType)
}

func shortID(id uuid.UUID) string {
	s := id.String()
	if len(s) < 8 {
		return s
	}
	return s[:8]
}
