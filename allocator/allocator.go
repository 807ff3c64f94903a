// Copyright 2026 Tessera ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package allocator provides the public API for the pre-execution offset
// planner: a single logical arena that assigns tensors byte offsets
// before any device buffer is acquired.
package allocator

import (
	internalallocator "github.com/tessera-ml/tessera/internal/allocator"
	"github.com/tessera-ml/tessera/runtime"
)

// Arena plans byte offsets for tensors ahead of any real allocation.
type Arena = internalallocator.Arena

// New creates an empty arena backed by rt, with the default 8-byte
// alignment.
func New(rt runtime.Runtime) *Arena {
	return internalallocator.New(rt)
}
