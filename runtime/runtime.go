// Copyright 2026 Tessera ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package runtime provides the public Runtime collaborator contract a
// Graph's allocator materializes its arena against.
package runtime

import internalruntime "github.com/tessera-ml/tessera/internal/runtime"

// Runtime hands back a byte buffer on Alloc and takes it back on Dealloc.
type Runtime = internalruntime.Runtime
