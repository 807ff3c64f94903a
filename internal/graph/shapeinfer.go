package graph

import "github.com/tessera-ml/tessera/internal/tensor"

// ShapeInfer propagates shapes through the graph in current operator-list
// order: for each operator, its kind-specific shape-inference function is
// invoked with the current input shapes, compared against the existing
// output shapes, and any output whose shape differs is overwritten.
// Idempotent by construction — a second call recomputes the same shapes
// and finds nothing to overwrite.
//
// Requires TopoSort to have succeeded first; unlike the source, which
// silently assumes the caller already sorted, this is an explicit checked
// precondition.
func (g *Graph) ShapeInfer() error {
	if !g.sorted {
		return fmtErr("ShapeInfer: graph is not sorted, call TopoSort first")
	}

	for _, opID := range g.opOrder {
		op := g.operators[opID]

		inputShapes := make([]tensor.Shape, len(op.Inputs))
		for i, id := range op.Inputs {
			inputShapes[i] = g.tensors[id].Shape
		}

		result, err := g.registry.Infer(op.Kind, op.Attrs, inputShapes)
		if err != nil {
			return fmtErr("ShapeInfer: operator %s: %w", op.GUID, err)
		}
		if len(result) != len(op.Outputs) {
			return fmtErr("ShapeInfer: operator %s produced %d shapes for %d outputs", op.GUID, len(result), len(op.Outputs))
		}
		for i, outID := range op.Outputs {
			out := g.tensors[outID]
			if !out.Shape.Equal(result[i]) {
				out.Shape = result[i]
			}
		}
	}
	return nil
}
