package ops

import (
	"fmt"

	"github.com/tessera-ml/tessera/internal/operator"
	"github.com/tessera-ml/tessera/internal/shapeutil"
	"github.com/tessera-ml/tessera/internal/tensor"
)

// InferConcat ports concat.cc's inferShape: every input must agree with
// the first on rank and on every dimension except Axis, which sums.
func InferConcat(attrs operator.Attrs, inputs []tensor.Shape) ([]tensor.Shape, error) {
	a, ok := attrs.(operator.ConcatAttrs)
	if !ok {
		return nil, fmt.Errorf("ops: Concat expects ConcatAttrs, got %T", attrs)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("ops: Concat requires at least 1 input")
	}
	rank := len(inputs[0])
	axis, err := shapeutil.NormalizeAxis(a.Axis, rank)
	if err != nil {
		return nil, fmt.Errorf("ops: Concat axis: %w", err)
	}

	dims := inputs[0].Clone()
	for i := 1; i < len(inputs); i++ {
		if len(inputs[i]) != rank {
			return nil, fmt.Errorf("ops: Concat input %d has rank %d, expected %d", i, len(inputs[i]), rank)
		}
		for d := 0; d < rank; d++ {
			if d == axis {
				continue
			}
			if inputs[i][d] != dims[d] {
				return nil, fmt.Errorf("ops: Concat input %d dimension %d is %d, expected %d", i, d, inputs[i][d], dims[d])
			}
		}
		dims[axis] += inputs[i][axis]
	}
	return []tensor.Shape{dims}, nil
}
