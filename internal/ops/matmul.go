package ops

import (
	"fmt"

	"github.com/tessera-ml/tessera/internal/operator"
	"github.com/tessera-ml/tessera/internal/shapeutil"
	"github.com/tessera-ml/tessera/internal/tensor"
)

// InferMatMul ports matmul.cc's inferShape: the last two dimensions of A
// and B (after applying transA/transB) form the matrix product, and the
// remaining leading dimensions broadcast as batch dimensions.
func InferMatMul(attrs operator.Attrs, inputs []tensor.Shape) ([]tensor.Shape, error) {
	a, ok := attrs.(operator.MatMulAttrs)
	if !ok {
		return nil, fmt.Errorf("ops: MatMul expects MatMulAttrs, got %T", attrs)
	}
	if len(inputs) != 2 {
		return nil, fmt.Errorf("ops: MatMul expects 2 inputs, got %d", len(inputs))
	}
	shapeA, shapeB := inputs[0], inputs[1]
	rankA, rankB := len(shapeA), len(shapeB)
	if rankA < 2 || rankB < 2 {
		return nil, fmt.Errorf("ops: MatMul inputs must have rank >= 2, got %d and %d", rankA, rankB)
	}

	dimAM, dimAK := shapeA[rankA-2], shapeA[rankA-1]
	if a.TransA {
		dimAM, dimAK = shapeA[rankA-1], shapeA[rankA-2]
	}
	dimBK, dimBN := shapeB[rankB-2], shapeB[rankB-1]
	if a.TransB {
		dimBK, dimBN = shapeB[rankB-1], shapeB[rankB-2]
	}
	if dimAK != dimBK {
		return nil, fmt.Errorf("ops: MatMul inner dimensions disagree: %d vs %d", dimAK, dimBK)
	}

	batchA, batchB := shapeA[:rankA-2], shapeB[:rankB-2]
	batch, err := shapeutil.Broadcast(batchA, batchB)
	if err != nil {
		return nil, fmt.Errorf("ops: MatMul batch dimensions: %w", err)
	}

	result := append(tensor.Shape{}, batch...)
	result = append(result, dimAM, dimBN)
	return []tensor.Shape{result}, nil
}
