// Package graph provides Graph, the single owner of every tensor and
// operator in a dataflow IR: it cross-links them on construction, enforces
// the structural invariants of §3, and drives topological sort, shape
// inference, optimization, and memory planning over them. Grounded on
// original_source/include/core/graph.h and src/core/graph.cc's GraphObj,
// rendered as identifier-keyed maps rather than shared-ownership pointers
// per the strict-ownership design note.
package graph

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tessera-ml/tessera/internal/allocator"
	"github.com/tessera-ml/tessera/internal/operator"
	"github.com/tessera-ml/tessera/internal/ops"
	"github.com/tessera-ml/tessera/internal/runtime"
	"github.com/tessera-ml/tessera/internal/tensor"
)

// Graph owns every tensor and operator by identifier, an Allocator for
// memory planning, and a Runtime handle. It is single-threaded and
// single-owner: no external party may retain an operator or tensor
// reference after the Graph is closed.
type Graph struct {
	rt       runtime.Runtime
	arena    *allocator.Arena
	registry *ops.Registry

	tensors     map[uuid.UUID]*tensor.Tensor
	tensorOrder []uuid.UUID // insertion order; shown in diagnostics, iterated by DataMalloc

	operators map[uuid.UUID]*operator.Operator
	opOrder   []uuid.UUID // mutated to topological order by TopoSort

	sorted bool
}

// New creates an empty graph over rt, with its own Allocator and the
// default shape-inference registry.
func New(rt runtime.Runtime) *Graph {
	return &Graph{
		rt:        rt,
		arena:     allocator.New(rt),
		registry:  ops.NewRegistry(),
		tensors:   make(map[uuid.UUID]*tensor.Tensor),
		operators: make(map[uuid.UUID]*operator.Operator),
	}
}

// Runtime returns the graph's runtime handle.
func (g *Graph) Runtime() runtime.Runtime {
	return g.rt
}

// Registry returns the graph's shape-inference dispatch table, so callers
// can register additional operator kinds.
func (g *Graph) Registry() *ops.Registry {
	return g.registry
}

// GetTensor looks up a tensor by fuid.
func (g *Graph) GetTensor(fuid uuid.UUID) (*tensor.Tensor, bool) {
	t, ok := g.tensors[fuid]
	return t, ok
}

// GetOperator looks up an operator by guid.
func (g *Graph) GetOperator(guid uuid.UUID) (*operator.Operator, bool) {
	o, ok := g.operators[guid]
	return o, ok
}

// Tensors returns every tensor in insertion order. The returned slice is a
// fresh copy of the pointer list; tensors themselves are still owned by
// the graph.
func (g *Graph) Tensors() []*tensor.Tensor {
	out := make([]*tensor.Tensor, len(g.tensorOrder))
	for i, id := range g.tensorOrder {
		out[i] = g.tensors[id]
	}
	return out
}

// Operators returns every operator in current list order (topological
// after a successful TopoSort).
func (g *Graph) Operators() []*operator.Operator {
	out := make([]*operator.Operator, len(g.opOrder))
	for i, id := range g.opOrder {
		out[i] = g.operators[id]
	}
	return out
}

// Sorted reports whether the operator list is currently known to be in
// topological order.
func (g *Graph) Sorted() bool {
	return g.sorted
}

// Close releases the arena's committed buffer back to the runtime, if one
// was ever acquired. Safe to call more than once and on a graph that
// never called DataMalloc.
func (g *Graph) Close() {
	g.arena.Close()
}

func removeID(order []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, existing := range order {
		if existing == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

func fmtErr(format string, args ...any) error {
	return fmt.Errorf("graph: "+format, args...)
}
