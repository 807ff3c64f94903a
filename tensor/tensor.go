// Copyright 2026 Tessera ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the graph IR's tensor node:
// shape, element type, identity, and the storage binding assigned once
// the allocator has planned the arena.
package tensor

import (
	internaltensor "github.com/tessera-ml/tessera/internal/tensor"
)

// DType is the enumerated element type of a tensor.
type DType = internaltensor.DType

// Supported element types.
const (
	Float32 DType = internaltensor.Float32
	Float64 DType = internaltensor.Float64
	Int32   DType = internaltensor.Int32
	Int64   DType = internaltensor.Int64
	Uint8   DType = internaltensor.Uint8
	Bool    DType = internaltensor.Bool
)

// Shape is the ordered dimension list of a tensor.
type Shape = internaltensor.Shape

// Storage binds a tensor to a byte range of the allocator's arena.
type Storage = internaltensor.Storage

// Tensor is a node in the dataflow graph.
type Tensor = internaltensor.Tensor

// New creates a graph-input tensor with a fresh, never-reused fuid.
//
// Example:
//
//	x := tensor.New(tensor.Shape{2, 3}, tensor.Float32)
func New(shape Shape, dtype DType) *Tensor {
	return internaltensor.New(shape, dtype)
}
