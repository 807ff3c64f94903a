// Package shapeutil provides the shape arithmetic shared by the operator
// zoo: right-aligned broadcasting and negative-axis normalization. Ported
// from operator_utils.cc rather than reimplemented from the prose
// description, so its edge-case behavior (which operand's dimension wins
// when one is 1, the exact range check on axis) matches the source this
// spec was distilled from.
package shapeutil

import (
	"fmt"

	"github.com/tessera-ml/tessera/internal/tensor"
)

// Broadcast computes the result shape of combining a and b under the
// standard right-aligned rule: the shorter shape is padded on the left
// with 1s, corresponding dimensions must be equal or one must be 1, and
// the result takes the larger of the two at each position. Returns an
// error naming the first incompatible position.
func Broadcast(a, b tensor.Shape) (tensor.Shape, error) {
	rankA, rankB := len(a), len(b)
	maxRank := rankA
	if rankB > maxRank {
		maxRank = rankB
	}

	result := make(tensor.Shape, maxRank)
	for i := 0; i < maxRank; i++ {
		dimA, dimB := 1, 1
		if i < rankA {
			dimA = a[rankA-1-i]
		}
		if i < rankB {
			dimB = b[rankB-1-i]
		}

		var out int
		switch {
		case dimA == dimB:
			out = dimA
		case dimA == 1:
			out = dimB
		case dimB == 1:
			out = dimA
		default:
			return nil, fmt.Errorf("shapeutil: incompatible broadcast dimensions %d and %d at position %d (shapes %s, %s)", dimA, dimB, i, a, b)
		}
		result[maxRank-1-i] = out
	}
	return result, nil
}
