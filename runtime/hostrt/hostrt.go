// Copyright 2026 Tessera ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package hostrt provides the public API for the host-memory runtime: a
// Runtime implementation backed by ordinary Go byte slices.
package hostrt

import (
	internalhostrt "github.com/tessera-ml/tessera/internal/runtime/hostrt"
	"github.com/tessera-ml/tessera/runtime"
)

// Runtime allocates ordinary Go byte slices.
type Runtime = internalhostrt.Runtime

// Compile-time check that Runtime implements runtime.Runtime.
var _ runtime.Runtime = (*Runtime)(nil)

// New creates a host-memory runtime.
//
// Example:
//
//	g := graph.New(hostrt.New())
func New() *Runtime {
	return internalhostrt.New()
}
