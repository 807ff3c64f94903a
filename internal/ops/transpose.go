package ops

import (
	"fmt"

	"github.com/tessera-ml/tessera/internal/operator"
	"github.com/tessera-ml/tessera/internal/tensor"
)

// InferTranspose permutes the input's dimensions according to Permute:
// output axis i takes input axis Permute[i].
func InferTranspose(attrs operator.Attrs, inputs []tensor.Shape) ([]tensor.Shape, error) {
	a, ok := attrs.(operator.TransposeAttrs)
	if !ok {
		return nil, fmt.Errorf("ops: Transpose expects TransposeAttrs, got %T", attrs)
	}
	if len(inputs) != 1 {
		return nil, fmt.Errorf("ops: Transpose expects 1 input, got %d", len(inputs))
	}
	shape := inputs[0]
	if len(a.Permute) != len(shape) {
		return nil, fmt.Errorf("ops: Transpose permutation length %d does not match input rank %d", len(a.Permute), len(shape))
	}

	seen := make([]bool, len(shape))
	out := make(tensor.Shape, len(shape))
	for i, p := range a.Permute {
		if p < 0 || p >= len(shape) {
			return nil, fmt.Errorf("ops: Transpose permutation index %d out of range for rank %d", p, len(shape))
		}
		if seen[p] {
			return nil, fmt.Errorf("ops: Transpose permutation repeats axis %d", p)
		}
		seen[p] = true
		out[i] = shape[p]
	}
	return []tensor.Shape{out}, nil
}
