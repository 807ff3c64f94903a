package graph

import (
	"github.com/google/uuid"
	"github.com/tessera-ml/tessera/internal/operator"
)

// fuseTransposeIntoMatmul scans MatMul operators whose A or B input is
// produced by a Transpose that swaps only the last two dimensions, and
// replaces the MatMul with a new one that reads the Transpose's input
// directly with the corresponding trans flag flipped. If the fused-away
// input has no other consumer, the Transpose operator and that tensor are
// removed; otherwise both survive for the other consumer. If A fuses, B
// is not also examined on the same MatMul in the same pass — a second
// pass will fuse B once the graph has settled. Ported from
// GraphObj::fuseTransposeIntoMatmul.
func (g *Graph) fuseTransposeIntoMatmul() (bool, error) {
	changed := false

	// Snapshot the operator list: fusing may shrink g.opOrder mid-loop
	// (removing a now-unused Transpose), and ranging over a slice that
	// shrinks under it would run past its current length.
	snapshot := append([]uuid.UUID(nil), g.opOrder...)

	for _, opID := range snapshot {
		op, ok := g.operators[opID]
		if !ok || op.Kind != operator.MatMul {
			continue
		}
		attrs := op.Attrs.(operator.MatMulAttrs)

		inputA := g.tensors[op.Inputs[0]]
		inputB := g.tensors[op.Inputs[1]]
		fusedA := false

		if sourceAID := inputA.Source; sourceAID != uuid.Nil {
			sourceA := g.operators[sourceAID]
			if sourceA.Kind == operator.Transpose {
				permA := sourceA.Attrs.(operator.TransposeAttrs).Permute
				if isLastTwoDimTranspose(permA, len(inputA.Shape)) {
					onlyConsumer := len(inputA.Targets) == 1
					newMatmul := operator.New(operator.MatMul,
						operator.MatMulAttrs{TransA: !attrs.TransA, TransB: attrs.TransB},
						[]uuid.UUID{sourceA.Inputs[0], inputB.FUID}, op.Outputs)
					g.replaceOperator(op, newMatmul)

					if onlyConsumer {
						g.tensors[sourceA.Inputs[0]].RemoveTarget(sourceA.GUID)
						g.RemoveOperator(sourceA.GUID)
						g.RemoveTensor(inputA.FUID)
					}
					fusedA = true
					changed = true
				}
			}
		}

		if fusedA {
			continue
		}

		if sourceBID := inputB.Source; sourceBID != uuid.Nil {
			sourceB := g.operators[sourceBID]
			if sourceB.Kind == operator.Transpose {
				permB := sourceB.Attrs.(operator.TransposeAttrs).Permute
				if isLastTwoDimTranspose(permB, len(inputB.Shape)) {
					onlyConsumer := len(inputB.Targets) == 1
					newMatmul := operator.New(operator.MatMul,
						operator.MatMulAttrs{TransA: attrs.TransA, TransB: !attrs.TransB},
						[]uuid.UUID{inputA.FUID, sourceB.Inputs[0]}, op.Outputs)
					g.replaceOperator(op, newMatmul)

					if onlyConsumer {
						g.tensors[sourceB.Inputs[0]].RemoveTarget(sourceB.GUID)
						g.RemoveOperator(sourceB.GUID)
						g.RemoveTensor(inputB.FUID)
					}
					changed = true
				}
			}
		}
	}

	return changed, nil
}

// isLastTwoDimTranspose reports whether perm fixes every axis except the
// final two, which it swaps. Ported from GraphObj::isLastTwoDimTranspose.
func isLastTwoDimTranspose(perm []int, rank int) bool {
	if rank < 2 {
		return false
	}
	for i := 0; i < rank-2; i++ {
		if perm[i] != i {
			return false
		}
	}
	return perm[rank-2] == rank-1 && perm[rank-1] == rank-2
}
