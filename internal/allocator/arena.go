// Package allocator provides Arena, the pre-execution offset planner over
// a single logical byte range: it assigns every tensor an offset before
// any device buffer is acquired, tracking a free-list and a high-water
// mark ("peak") that becomes the size of the one real allocation. Ported
// from original_source/src/core/allocator.cc, whose alloc/free/getPtr
// this module's Alloc/Free/GetPtr mirror function-for-function.
package allocator

import (
	"fmt"
	"sort"

	"github.com/tessera-ml/tessera/internal/runtime"
)

const defaultAlignment = 8 // sizeof(uint64) — the widest dtype this module supports

// block is a free byte range [Offset, Offset+Size).
type block struct {
	Offset uint64
	Size   uint64
}

// Arena plans byte offsets for tensors ahead of any real allocation. It
// commits to a runtime buffer exactly once, on the first call to GetPtr;
// after that, Alloc and Free are rejected.
type Arena struct {
	rt        runtime.Runtime
	alignment uint64

	peak uint64
	used uint64
	free []block // sorted by Offset, pairwise disjoint, non-adjacent

	buf []byte // nil until GetPtr's first call
}

// New creates an empty arena backed by rt, with the default 8-byte
// alignment (sufficient for every dtype this module's tensor package
// defines).
func New(rt runtime.Runtime) *Arena {
	return &Arena{rt: rt, alignment: defaultAlignment}
}

func (a *Arena) alignedSize(size uint64) uint64 {
	if size == 0 {
		return 0
	}
	return ((size-1)/a.alignment + 1) * a.alignment
}

// Alloc reserves size bytes and returns their offset within the arena.
// Prefers extending or carving the tail block (the one ending at peak) to
// keep peak tight, then falls back to first-fit over the free-list, then
// extends the arena. Returns an error if the arena has already committed
// a buffer via GetPtr.
func (a *Arena) Alloc(size uint64) (uint64, error) {
	if a.buf != nil {
		return 0, fmt.Errorf("allocator: Alloc called after GetPtr has committed the arena")
	}
	size = a.alignedSize(size)

	if n := len(a.free); n > 0 {
		last := a.free[n-1]
		if last.Offset+last.Size == a.peak {
			if last.Size >= size {
				addr := last.Offset
				a.free = a.free[:n-1]
				if last.Size > size {
					a.free = append(a.free, block{Offset: addr + size, Size: last.Size - size})
				}
				a.used += size
				return addr, nil
			}
			addr := last.Offset
			shortfall := size - last.Size
			a.free = a.free[:n-1]
			a.peak += shortfall
			a.used += size
			return addr, nil
		}
	}

	for i, b := range a.free {
		if b.Size >= size {
			addr := b.Offset
			a.free = append(a.free[:i], a.free[i+1:]...)
			if b.Size > size {
				a.insertFree(block{Offset: addr + size, Size: b.Size - size})
			}
			a.used += size
			return addr, nil
		}
	}

	addr := a.peak
	a.peak += size
	a.used += size
	return addr, nil
}

// Free returns the byte range [offset, offset+size) to the free-list,
// coalescing with an adjacent block on either side.
func (a *Arena) Free(offset, size uint64) error {
	if a.buf != nil {
		return fmt.Errorf("allocator: Free called after GetPtr has committed the arena")
	}
	size = a.alignedSize(size)
	a.used -= size
	a.insertFree(block{Offset: offset, Size: size})
	return nil
}

// insertFree inserts b into the sorted free-list and coalesces it with
// its immediate left and right neighbors, if any.
func (a *Arena) insertFree(b block) {
	i := sort.Search(len(a.free), func(i int) bool { return a.free[i].Offset >= b.Offset })
	a.free = append(a.free, block{})
	copy(a.free[i+1:], a.free[i:])
	a.free[i] = b

	if i+1 < len(a.free) {
		next := a.free[i+1]
		if a.free[i].Offset+a.free[i].Size == next.Offset {
			a.free[i].Size += next.Size
			a.free = append(a.free[:i+1], a.free[i+2:]...)
		}
	}
	if i > 0 {
		prev := a.free[i-1]
		if prev.Offset+prev.Size == a.free[i].Offset {
			a.free[i-1].Size += a.free[i].Size
			a.free = append(a.free[:i], a.free[i+1:]...)
		}
	}
}

// GetPtr materializes the arena as a real runtime buffer of peak bytes,
// on the first call only; subsequent calls return the same buffer.
func (a *Arena) GetPtr() ([]byte, error) {
	if a.buf == nil {
		buf, err := a.rt.Alloc(a.peak)
		if err != nil {
			return nil, fmt.Errorf("allocator: acquiring %d-byte arena: %w", a.peak, err)
		}
		a.buf = buf
	}
	return a.buf, nil
}

// Committed reports whether GetPtr has been called.
func (a *Arena) Committed() bool {
	return a.buf != nil
}

// Close releases the committed buffer, if any, back to the runtime. Safe
// to call on an arena that never committed.
func (a *Arena) Close() {
	if a.buf != nil {
		a.rt.Dealloc(a.buf)
		a.buf = nil
	}
}

// Used returns the number of bytes currently live (allocated and not
// freed).
func (a *Arena) Used() uint64 {
	return a.used
}

// Peak returns the largest offset ever committed; this is the size of
// the buffer GetPtr acquires.
func (a *Arena) Peak() uint64 {
	return a.peak
}

// Info returns a human-readable summary of used/peak memory, mirroring
// Allocator::info's console report in the source this is ported from.
func (a *Arena) Info() string {
	return fmt.Sprintf("Used memory: %d, peak memory: %d", a.used, a.peak)
}
