package graph

import (
	"github.com/google/uuid"
	"github.com/tessera-ml/tessera/internal/tensor"
)

// DataMalloc plans memory layout for every tensor: it requires TopoSort to
// succeed first, then requests an offset for each tensor's byte size from
// the allocator in current tensor-list order, then commits the arena
// (the first and only call to the allocator's GetPtr, acquiring peak
// bytes from the runtime) and binds each tensor's storage to
// (offset, bytes). After binding, further allocator Alloc/Free calls are
// rejected by the allocator itself.
//
// May not be called twice per graph — enforced transitively by the
// allocator's own use-after-commit guard, since the first Alloc call of a
// second DataMalloc would run against an arena that already has a
// committed buffer.
func (g *Graph) DataMalloc() error {
	if err := g.TopoSort(); err != nil {
		return fmtErr("DataMalloc: %w", err)
	}

	offsets := make(map[uuid.UUID]uint64, len(g.tensorOrder))
	for _, id := range g.tensorOrder {
		t := g.tensors[id]
		offset, err := g.arena.Alloc(t.Bytes())
		if err != nil {
			return fmtErr("DataMalloc: %w", err)
		}
		offsets[id] = offset
	}

	if _, err := g.arena.GetPtr(); err != nil {
		return fmtErr("DataMalloc: %w", err)
	}

	for _, id := range g.tensorOrder {
		t := g.tensors[id]
		t.Storage = &tensor.Storage{
			Offset: offsets[id],
			Bytes:  t.Bytes(),
		}
	}
	return nil
}

// Arena exposes the graph's allocator, e.g. for Info()/Used()/Peak()
// diagnostics after DataMalloc has run.
func (g *Graph) Arena() interface {
	Used() uint64
	Peak() uint64
	Info() string
} {
	return g.arena
}
