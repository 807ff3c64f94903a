package ops

import (
	"fmt"

	"github.com/tessera-ml/tessera/internal/operator"
	"github.com/tessera-ml/tessera/internal/shapeutil"
	"github.com/tessera-ml/tessera/internal/tensor"
)

// InferAdd broadcasts its two inputs per the standard right-aligned rule.
func InferAdd(attrs operator.Attrs, inputs []tensor.Shape) ([]tensor.Shape, error) {
	if _, ok := attrs.(operator.AddAttrs); !ok {
		return nil, fmt.Errorf("ops: Add expects AddAttrs, got %T", attrs)
	}
	if len(inputs) != 2 {
		return nil, fmt.Errorf("ops: Add expects 2 inputs, got %d", len(inputs))
	}
	out, err := shapeutil.Broadcast(inputs[0], inputs[1])
	if err != nil {
		return nil, fmt.Errorf("ops: Add: %w", err)
	}
	return []tensor.Shape{out}, nil
}
