// Package runtime provides the collaborator contract the allocator uses to
// materialize its arena, and a host-memory implementation of it. This
// module is deliberately thin: kernel execution and device negotiation are
// out of scope, so a Runtime only ever needs to hand back a byte buffer
// and take it back.
package runtime

// Runtime is the collaborator a Graph's Allocator calls into exactly once
// per lifetime: Alloc when the arena's peak size is first committed,
// Dealloc when the Graph is closed. Grounded on original_source's
// Allocator::getPtr / ~Allocator, which call runtime->alloc(peak) and
// runtime->dealloc(ptr) respectively.
type Runtime interface {
	// Alloc returns a buffer of exactly n bytes, or an error if the
	// runtime cannot satisfy the request.
	Alloc(n uint64) ([]byte, error)
	// Dealloc releases a buffer previously returned by Alloc. Called at
	// most once per buffer.
	Dealloc(buf []byte)
	// Name identifies the runtime, e.g. for error messages and the
	// AdoptTensor runtime-mismatch check.
	Name() string
}
