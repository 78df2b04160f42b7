package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeArea(t *testing.T) {
	sz := NewSizeID(7, 3, 4)
	assert.Equal(t, 12, sz.Area())
	assert.Equal(t, 7, sz.ID)
	assert.True(t, sz.IsValid())

	bad := NewSize(0, 5)
	assert.False(t, bad.IsValid())
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 2, 2)

	// 共享边界不算重叠（开区间语义）
	b := NewRect(2, 0, 2, 2)
	assert.False(t, a.Intersects(b))
	assert.False(t, b.Intersects(a))

	c := NewRect(1, 1, 2, 2)
	assert.True(t, a.Intersects(c))
	assert.True(t, c.Intersects(a))

	d := NewRect(0, 2, 2, 2)
	assert.False(t, a.Intersects(d))

	// 完全包含
	e := NewRect(0, 0, 5, 5)
	f := NewRect(1, 1, 2, 2)
	assert.True(t, e.Intersects(f))
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	assert.Equal(t, 6, r.Right())
	assert.Equal(t, 8, r.Top())
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 7))
	assert.False(t, r.Contains(6, 3))
	assert.False(t, r.Contains(2, 8))
}

func TestOrderedCopy(t *testing.T) {
	sizes := []Size{
		NewSizeID(1, 2, 2), // 面积 4
		NewSizeID(2, 4, 2), // 面积 8
		NewSizeID(3, 1, 4), // 面积 4
		NewSizeID(4, 2, 4), // 面积 8
	}

	dec := orderedCopy(sizes, OrderDecreasing)
	// 面积 8 在前，面积相同按宽度降序：4×2 在 2×4 之前
	assert.Equal(t, []int{2, 4, 1, 3}, ids(dec))

	inc := orderedCopy(sizes, OrderIncreasing)
	// 稳定排序：面积相同保持输入顺序
	assert.Equal(t, []int{1, 3, 2, 4}, ids(inc))

	none := orderedCopy(sizes, OrderNone)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(none))

	// 输入不被修改
	assert.Equal(t, []int{1, 2, 3, 4}, ids(sizes))
}

func ids(sizes []Size) []int {
	out := make([]int, len(sizes))
	for i := range sizes {
		out[i] = sizes[i].ID
	}
	return out
}
