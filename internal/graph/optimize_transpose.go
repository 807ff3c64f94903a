package graph

import (
	"github.com/tessera-ml/tessera/internal/operator"
)

// removeRedundantTranspose scans for a Transpose whose single output has
// exactly one consumer that is itself a Transpose, and whose permutation
// is the inverse of the first. When found, every consumer of the second
// Transpose's output is reconnected to read from the first Transpose's
// input, and both operators plus the intermediate and final output
// tensors are removed. Restarts the scan after each match, since a
// removal can expose a new match earlier in the list. Ported from
// GraphObj::removeRedundantTranspose.
func (g *Graph) removeRedundantTranspose() (bool, error) {
	changed := false

	for i := 0; i < len(g.opOrder); {
		opID := g.opOrder[i]
		op := g.operators[opID]
		if op.Kind != operator.Transpose {
			i++
			continue
		}

		output := g.tensors[op.Outputs[0]]
		if len(output.Targets) != 1 {
			i++
			continue
		}
		nextID := output.Targets[0]
		next := g.operators[nextID]
		if next.Kind != operator.Transpose {
			i++
			continue
		}

		perm1 := op.Attrs.(operator.TransposeAttrs).Permute
		perm2 := next.Attrs.(operator.TransposeAttrs).Permute
		if !isInversePermutation(perm1, perm2) {
			i++
			continue
		}

		input := g.tensors[op.Inputs[0]]
		finalOutput := g.tensors[next.Outputs[0]]

		g.reconnectTensors(input, finalOutput)

		g.RemoveOperator(op.GUID)
		g.RemoveOperator(next.GUID)
		g.RemoveTensor(output.FUID)
		g.RemoveTensor(finalOutput.FUID)

		changed = true
		i = 0
	}

	return changed, nil
}

// isInversePermutation reports whether perm2 undoes perm1: composing them
// as r[i] = perm2[perm1[i]] yields the identity permutation. Ported from
// GraphObj::isInversePermutation.
func isInversePermutation(perm1, perm2 []int) bool {
	if len(perm1) != len(perm2) {
		return false
	}
	for i, p := range perm1 {
		if perm2[p] != i {
			return false
		}
	}
	return true
}
