// Package ops provides shape inference for the reference operator zoo:
// one ShapeInferFunc per operator.Kind, dispatched through a Registry.
// SPEC_FULL.md leaves the operator zoo open; new kinds register their own
// inference function without the graph package changing.
package ops

import (
	"fmt"

	"github.com/tessera-ml/tessera/internal/operator"
	"github.com/tessera-ml/tessera/internal/tensor"
)

// ShapeInferFunc computes output shapes from an operator's current input
// shapes and attributes. It must be total over well-typed inputs and
// idempotent: calling it twice on the same inputs yields the same result.
type ShapeInferFunc func(attrs operator.Attrs, inputs []tensor.Shape) ([]tensor.Shape, error)

// Registry maps operator kinds to their shape-inference function.
type Registry struct {
	handlers map[operator.Kind]ShapeInferFunc
}

// NewRegistry returns a Registry pre-populated with the five reference
// kinds.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[operator.Kind]ShapeInferFunc)}
	r.Register(operator.MatMul, InferMatMul)
	r.Register(operator.Transpose, InferTranspose)
	r.Register(operator.Concat, InferConcat)
	r.Register(operator.Add, InferAdd)
	r.Register(operator.Relu, InferRelu)
	return r
}

// Register installs or overrides the shape-inference function for kind.
func (r *Registry) Register(kind operator.Kind, fn ShapeInferFunc) {
	r.handlers[kind] = fn
}

// Get returns the shape-inference function registered for kind.
func (r *Registry) Get(kind operator.Kind) (ShapeInferFunc, bool) {
	fn, ok := r.handlers[kind]
	return fn, ok
}

// Infer looks up and runs the shape-inference function for op's kind.
func (r *Registry) Infer(kind operator.Kind, attrs operator.Attrs, inputs []tensor.Shape) ([]tensor.Shape, error) {
	fn, ok := r.Get(kind)
	if !ok {
		return nil, fmt.Errorf("ops: no shape-inference function registered for kind %s", kind)
	}
	return fn(attrs, inputs)
}
