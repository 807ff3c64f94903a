// Package hostrt provides the reference Runtime: a plain host-memory
// buffer allocated with make([]byte, n). Grounded on the CPUBackend
// constructor/Name convention in internal/backend/cpu/backend.go, adapted
// from a compute backend to the two-method allocation collaborator
// SPEC_FULL.md's Runtime interface specifies.
package hostrt

import "fmt"

// Runtime allocates ordinary Go byte slices. It never fails Alloc except
// on an absurd request size, since it does not compete for a bounded
// device memory pool the way a GPU runtime would.
type Runtime struct{}

// New creates a host-memory runtime.
func New() *Runtime {
	return &Runtime{}
}

// Name returns the runtime's identifying name.
func (r *Runtime) Name() string {
	return "host"
}

// Alloc returns a freshly zeroed buffer of exactly n bytes.
func (r *Runtime) Alloc(n uint64) ([]byte, error) {
	const maxReasonable = 1 << 40 // 1 TiB guards against a corrupted peak size
	if n > maxReasonable {
		return nil, fmt.Errorf("hostrt: refusing to allocate %d bytes", n)
	}
	return make([]byte, n), nil
}

// Dealloc is a no-op: the Go garbage collector reclaims the buffer once
// nothing references it.
func (r *Runtime) Dealloc(buf []byte) {}
