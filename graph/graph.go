// Copyright 2026 Tessera ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the public API for the dataflow graph: the
// single owner of every tensor and operator, cross-linking them on
// construction and driving topological sort, algebraic optimization,
// shape inference, and memory planning over them.
package graph

import (
	internalgraph "github.com/tessera-ml/tessera/internal/graph"
	"github.com/tessera-ml/tessera/internal/operator"
	"github.com/tessera-ml/tessera/runtime"
)

// Graph owns every tensor and operator in a dataflow IR.
type Graph = internalgraph.Graph

// New creates an empty graph over rt, with its own allocator and the
// default shape-inference registry.
//
// Example:
//
//	g := graph.New(hostrt.New())
//	x, _ := g.AddTensor(tensor.Shape{2, 3}, tensor.Float32)
func New(rt runtime.Runtime) *Graph {
	return internalgraph.New(rt)
}

// Re-exported operator constants and attribute types, so callers building
// operators against a Graph need only import graph and tensor.
const (
	MatMul    = operator.MatMul
	Transpose = operator.Transpose
	Concat    = operator.Concat
	Add       = operator.Add
	Relu      = operator.Relu
)

type (
	// Kind identifies the computation an operator performs.
	Kind = operator.Kind
	// Attrs is implemented by every kind's typed attribute record.
	Attrs = operator.Attrs
	// MatMulAttrs are a MatMul operator's transpose flags.
	MatMulAttrs = operator.MatMulAttrs
	// TransposeAttrs is a Transpose operator's output permutation.
	TransposeAttrs = operator.TransposeAttrs
	// ConcatAttrs is a Concat operator's join axis.
	ConcatAttrs = operator.ConcatAttrs
	// AddAttrs is an Add operator's (empty) attribute set.
	AddAttrs = operator.AddAttrs
	// ReluAttrs is a Relu operator's (empty) attribute set.
	ReluAttrs = operator.ReluAttrs
)
