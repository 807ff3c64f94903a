package graph

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessera-ml/tessera/internal/operator"
	"github.com/tessera-ml/tessera/internal/runtime/hostrt"
	"github.com/tessera-ml/tessera/internal/tensor"
)

// Scenario 1: x:[2,3,4] -> T(perm=[2,0,1]) -> y -> T(perm=[1,2,0]) -> z.
// Before optimize: two Transpose operators plus a Relu consumer of z. After:
// zero Transpose operators remain and z's original consumers now read from x.
func TestOptimizeInverseTranspose(t *testing.T) {
	g := New(hostrt.New())
	x, _ := g.AddTensor(tensor.Shape{2, 3, 4}, tensor.Float32)
	y, _ := g.AddTensor(tensor.Shape{4, 2, 3}, tensor.Float32)
	z, _ := g.AddTensor(tensor.Shape{2, 3, 4}, tensor.Float32)

	_, err := g.AddOperator(operator.Transpose, operator.TransposeAttrs{Permute: []int{2, 0, 1}},
		[]uuid.UUID{x.FUID}, []uuid.UUID{y.FUID})
	require.NoError(t, err)
	_, err = g.AddOperator(operator.Transpose, operator.TransposeAttrs{Permute: []int{1, 2, 0}},
		[]uuid.UUID{y.FUID}, []uuid.UUID{z.FUID})
	require.NoError(t, err)

	// Give z a downstream consumer so we can verify it now reads from x.
	w, _ := g.AddTensor(tensor.Shape{2, 3, 4}, tensor.Float32)
	_, err = g.AddOperator(operator.Relu, operator.ReluAttrs{}, []uuid.UUID{z.FUID}, []uuid.UUID{w.FUID})
	require.NoError(t, err)

	require.Len(t, g.Operators(), 3)

	require.NoError(t, g.Optimize())

	for _, op := range g.Operators() {
		assert.NotEqual(t, operator.Transpose, op.Kind)
	}
	reluOp, ok := g.GetOperator(g.Operators()[0].GUID)
	require.True(t, ok)
	assert.Equal(t, x.FUID, reluOp.Inputs[0], "relu must now read from x")
	assert.NoError(t, g.CheckValid())
}

// Scenario 2: A:[M,K], B0:[N,K], B = T(B0, perm=[1,0]), C = MatMul(A, B).
// After optimize: one MatMul with inputs (A, B0) and transB=true; the
// Transpose and B are removed.
func TestOptimizeFuseTransposeIntoMatmulRightOperand(t *testing.T) {
	g := New(hostrt.New())
	a, _ := g.AddTensor(tensor.Shape{4, 3}, tensor.Float32)
	b0, _ := g.AddTensor(tensor.Shape{5, 3}, tensor.Float32)
	b, _ := g.AddTensor(tensor.Shape{3, 5}, tensor.Float32)
	c, _ := g.AddTensor(tensor.Shape{4, 5}, tensor.Float32)

	_, err := g.AddOperator(operator.Transpose, operator.TransposeAttrs{Permute: []int{1, 0}},
		[]uuid.UUID{b0.FUID}, []uuid.UUID{b.FUID})
	require.NoError(t, err)
	_, err = g.AddOperator(operator.MatMul, operator.MatMulAttrs{}, []uuid.UUID{a.FUID, b.FUID}, []uuid.UUID{c.FUID})
	require.NoError(t, err)

	require.NoError(t, g.Optimize())

	ops := g.Operators()
	require.Len(t, ops, 1)
	assert.Equal(t, operator.MatMul, ops[0].Kind)
	assert.True(t, ops[0].Attrs.(operator.MatMulAttrs).TransB)
	assert.Equal(t, []uuid.UUID{a.FUID, b0.FUID}, ops[0].Inputs)
	assert.Equal(t, ops[0].GUID, c.Source)

	_, stillThere := g.GetTensor(b.FUID)
	assert.False(t, stillThere, "B must be removed once its only consumer is fused")
	assert.NoError(t, g.CheckValid())
}

// Scenario 3: same as 2 but B has a second consumer. After optimize: a new
// MatMul reads B0 with transB=true; the Transpose and B remain (the other
// consumer still uses them).
func TestOptimizeFuseTransposeIntoMatmulSharedTranspose(t *testing.T) {
	g := New(hostrt.New())
	a, _ := g.AddTensor(tensor.Shape{4, 3}, tensor.Float32)
	b0, _ := g.AddTensor(tensor.Shape{5, 3}, tensor.Float32)
	b, _ := g.AddTensor(tensor.Shape{3, 5}, tensor.Float32)
	c, _ := g.AddTensor(tensor.Shape{4, 5}, tensor.Float32)
	other, _ := g.AddTensor(tensor.Shape{3, 5}, tensor.Float32)

	_, err := g.AddOperator(operator.Transpose, operator.TransposeAttrs{Permute: []int{1, 0}},
		[]uuid.UUID{b0.FUID}, []uuid.UUID{b.FUID})
	require.NoError(t, err)
	_, err = g.AddOperator(operator.MatMul, operator.MatMulAttrs{}, []uuid.UUID{a.FUID, b.FUID}, []uuid.UUID{c.FUID})
	require.NoError(t, err)
	// A second, independent consumer of B keeps it (and the Transpose) alive.
	_, err = g.AddOperator(operator.Relu, operator.ReluAttrs{}, []uuid.UUID{b.FUID}, []uuid.UUID{other.FUID})
	require.NoError(t, err)

	require.NoError(t, g.Optimize())

	_, stillThere := g.GetTensor(b.FUID)
	assert.True(t, stillThere, "B must survive: it still has another consumer")

	var transposeCount, matmulCount int
	var fusedMatmul *operator.Operator
	for _, op := range g.Operators() {
		switch op.Kind {
		case operator.Transpose:
			transposeCount++
		case operator.MatMul:
			matmulCount++
			fusedMatmul = op
		}
	}
	assert.Equal(t, 1, transposeCount, "the Transpose must survive for the other consumer")
	require.Equal(t, 1, matmulCount)
	assert.True(t, fusedMatmul.Attrs.(operator.MatMulAttrs).TransB)
	assert.Equal(t, []uuid.UUID{a.FUID, b0.FUID}, fusedMatmul.Inputs)
	assert.NoError(t, g.CheckValid())
}

func TestOptimizeIdempotent(t *testing.T) {
	g := New(hostrt.New())
	x, _ := g.AddTensor(tensor.Shape{2, 3, 4}, tensor.Float32)
	y, _ := g.AddTensor(tensor.Shape{4, 2, 3}, tensor.Float32)
	z, _ := g.AddTensor(tensor.Shape{2, 3, 4}, tensor.Float32)
	_, err := g.AddOperator(operator.Transpose, operator.TransposeAttrs{Permute: []int{2, 0, 1}}, []uuid.UUID{x.FUID}, []uuid.UUID{y.FUID})
	require.NoError(t, err)
	_, err = g.AddOperator(operator.Transpose, operator.TransposeAttrs{Permute: []int{1, 2, 0}}, []uuid.UUID{y.FUID}, []uuid.UUID{z.FUID})
	require.NoError(t, err)

	require.NoError(t, g.Optimize())
	countAfterFirst := len(g.Operators())

	require.NoError(t, g.Optimize())
	assert.Equal(t, countAfterFirst, len(g.Operators()))
}

func TestOptimizeEmptyGraphIsNoOp(t *testing.T) {
	g := New(hostrt.New())
	require.NoError(t, g.Optimize())
	assert.Empty(t, g.Operators())
}
