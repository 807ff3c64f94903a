package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessera-ml/tessera/internal/runtime/hostrt"
)

func newArena() *Arena {
	return New(hostrt.New())
}

func TestAllocExtendsFromEmpty(t *testing.T) {
	a := newArena()
	off, err := a.Alloc(16)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), off)
	assert.Equal(t, uint64(16), a.Peak())
	assert.Equal(t, uint64(16), a.Used())
}

func TestAllocAlignsUp(t *testing.T) {
	a := newArena()
	off, err := a.Alloc(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), off)
	assert.Equal(t, uint64(defaultAlignment), a.Peak())
}

func TestAllocZeroLeavesStateUnchanged(t *testing.T) {
	a := newArena()
	_, err := a.Alloc(16)
	require.NoError(t, err)
	before := a.Used()
	beforePeak := a.Peak()

	_, err = a.Alloc(0)
	require.NoError(t, err)
	assert.Equal(t, before, a.Used())
	assert.Equal(t, beforePeak, a.Peak())
}

func TestFreeWholeRangeReturnsUsedToZero(t *testing.T) {
	a := newArena()
	off, err := a.Alloc(32)
	require.NoError(t, err)
	require.NoError(t, a.Free(off, 32))

	assert.Equal(t, uint64(0), a.Used())
	assert.Equal(t, uint64(32), a.Peak(), "this design does not shrink peak on tail-free")
}

// Scenario 5 from the concrete allocator test set: alloc 16, alloc 32,
// alloc 16; free the middle 32; alloc 8 returns the freed block's start,
// leaving 24 bytes behind it in the free-list.
func TestFirstFitWithSplit(t *testing.T) {
	a := newArena()
	offA, err := a.Alloc(16)
	require.NoError(t, err)
	offB, err := a.Alloc(32)
	require.NoError(t, err)
	_, err = a.Alloc(16)
	require.NoError(t, err)

	require.NoError(t, a.Free(offB, 32))

	offNew, err := a.Alloc(8)
	require.NoError(t, err)
	assert.Equal(t, offB, offNew, "first-fit should reuse the freed block's start")
	assert.Equal(t, uint64(0), offA)

	require.Len(t, a.free, 1)
	assert.Equal(t, offB+8, a.free[0].Offset)
	assert.Equal(t, uint64(24), a.free[0].Size)
}

// Scenario 6: alloc three 16-byte blocks a, b, c in order; free a, free c,
// then free b coalesces into a single (0, 48) block.
func TestCoalescingBothNeighbors(t *testing.T) {
	a := newArena()
	offA, err := a.Alloc(16)
	require.NoError(t, err)
	offB, err := a.Alloc(16)
	require.NoError(t, err)
	offC, err := a.Alloc(16)
	require.NoError(t, err)

	require.NoError(t, a.Free(offA, 16))
	require.NoError(t, a.Free(offC, 16))
	require.NoError(t, a.Free(offB, 16))

	require.Len(t, a.free, 1)
	assert.Equal(t, uint64(0), a.free[0].Offset)
	assert.Equal(t, uint64(48), a.free[0].Size)
	assert.Equal(t, uint64(0), a.Used())
	assert.Equal(t, uint64(48), a.Peak())
}

func TestTailBlockExtension(t *testing.T) {
	a := newArena()
	off1, err := a.Alloc(16)
	require.NoError(t, err)
	require.NoError(t, a.Free(off1, 16))

	// Tail block is (0,16); requesting 32 should extend peak by 16 more
	// and reuse offset 0, rather than first-fit-scanning past it.
	off2, err := a.Alloc(32)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), off2)
	assert.Equal(t, uint64(32), a.Peak())
	assert.Empty(t, a.free)
}

func TestGetPtrCommitsOnce(t *testing.T) {
	a := newArena()
	_, err := a.Alloc(64)
	require.NoError(t, err)

	buf1, err := a.GetPtr()
	require.NoError(t, err)
	assert.Len(t, buf1, 64)

	buf2, err := a.GetPtr()
	require.NoError(t, err)
	assert.Same(t, &buf1[0], &buf2[0], "second GetPtr must return the same buffer")
}

func TestAllocAfterCommitFails(t *testing.T) {
	a := newArena()
	_, err := a.Alloc(16)
	require.NoError(t, err)
	_, err = a.GetPtr()
	require.NoError(t, err)

	_, err = a.Alloc(16)
	assert.Error(t, err)

	err = a.Free(0, 16)
	assert.Error(t, err)
}

func TestEmptyArenaCommitsZeroBytes(t *testing.T) {
	a := newArena()
	buf, err := a.GetPtr()
	require.NoError(t, err)
	assert.Len(t, buf, 0)
	assert.Equal(t, uint64(0), a.Peak())
}

func TestCloseIsSafeWithoutCommit(t *testing.T) {
	a := newArena()
	assert.NotPanics(t, func() { a.Close() })
}

func TestInfoReportsUsedAndPeak(t *testing.T) {
	a := newArena()
	_, err := a.Alloc(16)
	require.NoError(t, err)
	assert.Contains(t, a.Info(), "16")
}
