package ops

import (
	"fmt"

	"github.com/tessera-ml/tessera/internal/operator"
	"github.com/tessera-ml/tessera/internal/tensor"
)

// InferRelu is elementwise: output shape equals input shape.
func InferRelu(attrs operator.Attrs, inputs []tensor.Shape) ([]tensor.Shape, error) {
	if _, ok := attrs.(operator.ReluAttrs); !ok {
		return nil, fmt.Errorf("ops: Relu expects ReluAttrs, got %T", attrs)
	}
	if len(inputs) != 1 {
		return nil, fmt.Errorf("ops: Relu expects 1 input, got %d", len(inputs))
	}
	return []tensor.Shape{inputs[0].Clone()}, nil
}
