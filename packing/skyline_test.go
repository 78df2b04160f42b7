package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkylineInitialState(t *testing.T) {
	sky := NewSkyline(10, 10)
	assert.Equal(t, []segment{{x: 0, width: 10, height: 0}}, sky.segments)
	assert.False(t, sky.IsFilled())
	require.NoError(t, sky.checkInvariants())
}

func TestSkylineApplyUndoRoundTrip(t *testing.T) {
	sky := NewSkyline(10, 10)

	sky.Apply(NewRect(2, 0, 3, 4))
	assert.Equal(t, []segment{
		{x: 0, width: 2, height: 0},
		{x: 2, width: 3, height: 4},
		{x: 5, width: 5, height: 0},
	}, sky.segments)
	require.NoError(t, sky.checkInvariants())

	sky.Undo()
	assert.Equal(t, []segment{{x: 0, width: 10, height: 0}}, sky.segments)
	require.NoError(t, sky.checkInvariants())
}

func TestSkylineApplyMergesEqualHeights(t *testing.T) {
	sky := NewSkyline(4, 4)
	sky.Apply(NewRect(0, 0, 2, 2))
	sky.Apply(NewRect(2, 0, 2, 2))
	// 两个等高段必须合并
	assert.Equal(t, []segment{{x: 0, width: 4, height: 2}}, sky.segments)
	require.NoError(t, sky.checkInvariants())

	sky.Apply(NewRect(0, 2, 4, 2))
	assert.True(t, sky.IsFilled())
	require.NoError(t, sky.checkInvariants())
}

func TestSkylineBalancedUndoRestoresInitial(t *testing.T) {
	sky := NewSkyline(8, 6)

	sky.Apply(NewRect(0, 0, 3, 2))
	sky.Apply(NewRect(3, 0, 2, 5))
	sky.Apply(NewRect(0, 2, 3, 1))
	require.NoError(t, sky.checkInvariants())

	sky.Undo()
	sky.Undo()
	sky.Undo()
	assert.Equal(t, []segment{{x: 0, width: 8, height: 0}}, sky.segments)
	assert.Empty(t, sky.history)
}

func TestSkylineUndoWithoutApplyPanics(t *testing.T) {
	sky := NewSkyline(4, 4)
	assert.Panics(t, func() { sky.Undo() })
}

func TestSkylineNarrowestValley(t *testing.T) {
	sky := NewSkyline(10, 10)

	// 只有一个段时它就是山谷
	i, ok := sky.NarrowestValley()
	require.True(t, ok)
	assert.Equal(t, 0, i)

	// 轮廓: [0,4)@5  [4,6)@1  [6,10)@3 — 唯一的严格山谷是 (4,6)；
	// (6,10) 高于左邻，不是山谷
	sky.Apply(NewRect(0, 0, 10, 1))
	sky.Apply(NewRect(0, 1, 4, 4))
	sky.Apply(NewRect(6, 1, 4, 2))
	require.Equal(t, []segment{
		{x: 0, width: 4, height: 5},
		{x: 4, width: 2, height: 1},
		{x: 6, width: 4, height: 3},
	}, sky.segments)

	i, ok = sky.NarrowestValley()
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 3, sky.CeilingHeight(i))

	// 填满后没有山谷
	full := NewSkyline(4, 4)
	full.Apply(NewRect(0, 0, 4, 4))
	_, ok = full.NarrowestValley()
	assert.False(t, ok)
}

func TestSkylineStaircaseValley(t *testing.T) {
	// 阶梯轮廓: [0,2)@3  [2,6)@1 — 边界邻居按容器高度处理，
	// 所以最低的右段是严格山谷
	sky := NewSkyline(6, 6)
	sky.Apply(NewRect(0, 0, 6, 1))
	sky.Apply(NewRect(0, 1, 2, 2))
	i, ok := sky.NarrowestValley()
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 3, sky.CeilingHeight(i))
}

func TestSkylineValleyTieBreaks(t *testing.T) {
	// 两个同宽山谷: [1,2)@3 和 [4,5)@2 — 取更低的
	sky := NewSkyline(6, 10)
	sky.Apply(NewRect(0, 0, 6, 2))
	sky.Apply(NewRect(0, 2, 1, 3))
	sky.Apply(NewRect(2, 2, 2, 4))
	sky.Apply(NewRect(1, 2, 1, 1))
	sky.Apply(NewRect(5, 2, 1, 2))
	// 轮廓: [0,1)@5 [1,2)@3 [2,4)@6 [4,5)@2 [5,6)@4
	require.Equal(t, []segment{
		{x: 0, width: 1, height: 5},
		{x: 1, width: 1, height: 3},
		{x: 2, width: 2, height: 6},
		{x: 4, width: 1, height: 2},
		{x: 5, width: 1, height: 4},
	}, sky.segments)

	i, ok := sky.NarrowestValley()
	require.True(t, ok)
	assert.Equal(t, 3, i)
}

func TestSkylineAvailableWidth(t *testing.T) {
	sky := NewSkyline(10, 10)
	sky.Apply(NewRect(0, 0, 4, 2))
	// 轮廓: [0,4)@2  [4,10)@0
	assert.Equal(t, 6, sky.AvailableWidth(4, 0))
	assert.Equal(t, 4, sky.AvailableWidth(0, 2))
	// 从高度不匹配的位置出发宽度为 0
	assert.Equal(t, 0, sky.AvailableWidth(0, 1))
}

func TestSkylineApplySplitsStraddlingSegments(t *testing.T) {
	sky := NewSkyline(10, 10)
	sky.Apply(NewRect(0, 0, 10, 2))
	// 横跨 [3,7) 的条带抬升，两侧保持原高
	sky.Apply(NewRect(3, 2, 4, 3))
	assert.Equal(t, []segment{
		{x: 0, width: 3, height: 2},
		{x: 3, width: 4, height: 5},
		{x: 7, width: 3, height: 2},
	}, sky.segments)
	require.NoError(t, sky.checkInvariants())
}
