package packing

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// maxCandidates 是一次搜索最多尝试的候选容器数。
const maxCandidates = 500

// ErrNoRectangles 表示搜索没有任何输入矩形。
var ErrNoRectangles = errors.New("container search needs at least one rectangle")

// SearchMode 决定候选容器的生成策略。
type SearchMode int

const (
	// SearchExact 面向精确求解器（DFS）：候选面积限制在总面积的
	// (1.008, 1.15] 倍之间——下界排除了需要完美铺满的容器，
	// Korf 基准的正方形不可能完美铺满——并且每对尺寸只取一个朝向。
	SearchExact SearchMode = iota
	// SearchGreedy 面向贪心求解器（Bottom-Left）：网格更宽，
	// 面积上限放宽到总面积的 2 倍，两个朝向都尝试。
	SearchGreedy
)

// SolverFactory 为给定容器尺寸构造一个求解器。
type SolverFactory func(width, height int) (Solver, error)

// ContainerSearch 枚举候选容器并按面积从小到大逐个交给求解器，
// 返回第一个装得下全部矩形的容器。
type ContainerSearch struct {
	sizes   []Size
	factory SolverFactory
	mode    SearchMode

	totalArea int
	maxWidth  int
	maxHeight int
}

// NewContainerSearch 创建一个最优容器搜索。
func NewContainerSearch(sizes []Size, mode SearchMode, factory SolverFactory) (*ContainerSearch, error) {
	if len(sizes) == 0 {
		return nil, ErrNoRectangles
	}
	if !validSizes(sizes) {
		return nil, fmt.Errorf("container search: invalid rectangle dimensions")
	}
	c := &ContainerSearch{
		sizes:   sizes,
		factory: factory,
		mode:    mode,
	}
	for i := range sizes {
		c.totalArea += sizes[i].Area()
		c.maxWidth = max(c.maxWidth, sizes[i].Width)
		c.maxHeight = max(c.maxHeight, sizes[i].Height)
	}
	return c, nil
}

// ceilDiv 返回 a/b 向上取整。
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// exactCandidates 生成精确模式的候选：宽度从最大矩形宽度扫到
// 所有宽度之和，高度取容纳总面积所需的最小值；(W, H) 归一化为
// 升序对，避免同一尺寸测试两个朝向。
func (c *ContainerSearch) exactCandidates(seen map[Size]bool, out []Size) []Size {
	widthSum := 0
	for i := range c.sizes {
		widthSum += c.sizes[i].Width
	}

	lower := 1.008 * float64(c.totalArea)
	upper := 1.15 * float64(c.totalArea)

	for w := c.maxWidth; w <= widthSum; w++ {
		h := max(ceilDiv(c.totalArea, w), c.maxHeight)
		area := float64(w * h)

		admit := lower < area && area <= upper
		// 单个矩形本身就是完美铺满，此时允许零浪费的容器
		if len(c.sizes) == 1 && w*h == c.totalArea {
			admit = true
		}
		if !admit {
			continue
		}

		cand := NewSize(min(w, h), max(w, h))
		if !seen[cand] {
			seen[cand] = true
			out = append(out, cand)
		}
	}
	return out
}

// greedyCandidates 生成贪心模式的候选：宽度从 ⌈√A⌉ 附近扫 300 格，
// 高度在最小可行值上再尝试几个偏移，面积不超过总面积的 2 倍，
// 两个朝向都加入候选。
func (c *ContainerSearch) greedyCandidates(seen map[Size]bool, out []Size) []Size {
	base := int(math.Ceil(math.Sqrt(float64(c.totalArea))))

	for w := max(base, c.maxWidth); w <= base+300; w++ {
		minH := max(ceilDiv(c.totalArea, w), c.maxHeight)
		for off := 0; off <= 2; off++ {
			h := minH + off
			if w*h > 2*c.totalArea {
				continue
			}
			for _, cand := range []Size{NewSize(w, h), NewSize(h, w)} {
				if cand.Width < c.maxWidth || cand.Height < c.maxHeight {
					continue
				}
				if !seen[cand] {
					seen[cand] = true
					out = append(out, cand)
				}
			}
		}
	}
	return out
}

// Candidates 返回按面积升序排列的候选容器列表，最多 limit 个。
// limit <= 0 时使用默认上限。
func (c *ContainerSearch) Candidates(limit int) []Size {
	if limit <= 0 {
		limit = maxCandidates
	}

	seen := make(map[Size]bool)
	var out []Size
	switch c.mode {
	case SearchGreedy:
		out = c.greedyCandidates(seen, out)
	default:
		out = c.exactCandidates(seen, out)
	}

	slices.SortFunc(out, func(a, b Size) int {
		if d := cmp.Compare(a.Area(), b.Area()); d != 0 {
			return d
		}
		if d := cmp.Compare(a.Width, b.Width); d != 0 {
			return d
		}
		return cmp.Compare(a.Height, b.Height)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Find 按面积从小到大逐个尝试候选容器，返回第一个成功的
// (容器尺寸, 求解器)。没有候选成功时 ok 为 false。
func (c *ContainerSearch) Find(order Order) (Size, Solver, bool) {
	for _, cand := range c.Candidates(0) {
		solver, err := c.factory(cand.Width, cand.Height)
		if err != nil {
			continue
		}
		if solver.Pack(c.sizes, order) {
			return cand, solver, true
		}
	}
	return Size{}, nil, false
}
