package packing

import (
	"errors"
	"fmt"
)

var (
	// ErrBadContainer 表示容器尺寸非法。
	ErrBadContainer = errors.New("container dimensions must be greater than 0")
	// ErrUnknownSolver 表示按名称解析求解器失败。
	ErrUnknownSolver = errors.New("unknown solver name")
)

// Solver 是所有矩形装箱求解器的公共接口。
// Pack 尝试把所有尺寸放入容器，成功时每个输入都有对应的放置；
// 失败时 Placed 返回空列表。Pack 在入口处完全重置内部状态，
// 同一个求解器实例可以被复用。
type Solver interface {
	// Pack 按给定顺序放置全部矩形，全部放下时返回 true。
	Pack(sizes []Size, order Order) bool
	// Placed 返回已放置的矩形列表（由求解器持有，修改请先复制）。
	Placed() []Rect
	// Container 返回容器尺寸。
	Container() Size
	// UsedWidth 返回已使用的最大宽度 max(x+width)。
	UsedWidth() int
	// UsedHeight 返回已使用的最大高度 max(y+height)。
	UsedHeight() int
	// Wasted 返回容器面积减去已放置面积。
	Wasted() int
}

// solverBase 是求解器的公共状态：容器尺寸与已放置列表。
type solverBase struct {
	width  int
	height int
	placed []Rect
}

// reset 清空放置状态，保留容器尺寸。
func (b *solverBase) reset() {
	b.placed = b.placed[:0]
}

// Placed 返回已放置的矩形列表。
func (b *solverBase) Placed() []Rect {
	return b.placed
}

// Container 返回容器尺寸。
func (b *solverBase) Container() Size {
	return NewSize(b.width, b.height)
}

// UsedWidth 返回已使用的最大宽度。
func (b *solverBase) UsedWidth() int {
	used := 0
	for i := range b.placed {
		used = max(used, b.placed[i].Right())
	}
	return used
}

// UsedHeight 返回已使用的最大高度。
func (b *solverBase) UsedHeight() int {
	used := 0
	for i := range b.placed {
		used = max(used, b.placed[i].Top())
	}
	return used
}

// Wasted 返回容器中未被覆盖的面积。
func (b *solverBase) Wasted() int {
	area := b.width * b.height
	for i := range b.placed {
		area -= b.placed[i].Area()
	}
	return area
}

// canPlaceAt 检查尺寸 sz 放在 (x, y) 是否越界或与已放置矩形重叠。
func (b *solverBase) canPlaceAt(sz Size, x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	if x+sz.Width > b.width || y+sz.Height > b.height {
		return false
	}
	for i := range b.placed {
		p := &b.placed[i]
		if x < p.X+p.Width && x+sz.Width > p.X &&
			y < p.Y+p.Height && y+sz.Height > p.Y {
			return false
		}
	}
	return true
}

// validSizes 报告所有输入尺寸是否都合法（两条边均 >= 1）。
func validSizes(sizes []Size) bool {
	for i := range sizes {
		if !sizes[i].IsValid() {
			return false
		}
	}
	return true
}

// totalArea 返回尺寸列表的面积之和。
func totalArea(sizes []Size) int {
	total := 0
	for i := range sizes {
		total += sizes[i].Area()
	}
	return total
}

// newSolverBase 校验容器尺寸并构造公共状态。
func newSolverBase(width, height int) (solverBase, error) {
	if width <= 0 || height <= 0 {
		return solverBase{}, fmt.Errorf("%w (given %vx%v)", ErrBadContainer, width, height)
	}
	return solverBase{width: width, height: height}, nil
}

// ResolveSolver 按名称构造求解器。
// 支持的名称：BottomLeft、DFS、PRP。
func ResolveSolver(name string, width, height int) (Solver, error) {
	switch name {
	case "BottomLeft":
		return NewBottomLeft(width, height)
	case "DFS":
		return NewDFSSolver(width, height)
	case "PRP":
		return NewPRPSolver(width, height)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}
