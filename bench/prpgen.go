package bench

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"rectpacksolver/packing"
)

// PRPGenerator 用平衡的 guillotine 切割生成 Perfect Rectangle Packing
// 实例。维护一个待切割的块列表，每一步：
//  1. 在最大的几块里挑一块（偏向最大块，使尺寸均衡）；
//  2. 沿较长的维度切（产生更紧凑的形状）；
//  3. 切口位置限制在维度的 [minRatio, 1-minRatio] 区间内，
//     避免退化的细条。
// 块总数达到目标后停止，剩下的块全部成为叶子矩形。
type PRPGenerator struct {
	width    int
	height   int
	target   int
	minSize  int
	minRatio float64
	rng      *rand.Rand

	leaves []packing.Rect
	nextID int
}

// NewPRPGenerator 创建生成器并立即生成实例。seed 固定时输出可复现。
func NewPRPGenerator(width, height, target int, seed int64, minSize int, minRatio float64) *PRPGenerator {
	g := &PRPGenerator{
		width:    width,
		height:   height,
		target:   target,
		minSize:  minSize,
		minRatio: minRatio,
		rng:      rand.New(rand.NewSource(seed)),
	}
	g.generate()
	return g
}

// generate 执行切割。
func (g *PRPGenerator) generate() {
	g.leaves = g.leaves[:0]
	g.nextID = 1

	pieces := []packing.Rect{packing.NewRect(0, 0, g.width, g.height)}

	for len(pieces)+len(g.leaves) < g.target && len(pieces) > 0 {
		// 面积降序，在最大的 3 块里随机挑一块来切，
		// 避免切出过于规律的图案
		sortPiecesByAreaDesc(pieces)
		k := min(3, len(pieces))
		idx := g.rng.Intn(k)
		piece := pieces[idx]
		pieces = append(pieces[:idx], pieces[idx+1:]...)

		split, ok := g.split(piece)
		if !ok {
			// 这块已经小到切不动，成为叶子
			g.addLeaf(piece)
			continue
		}
		pieces = append(pieces, split...)
	}

	for _, piece := range pieces {
		g.addLeaf(piece)
	}
}

// sortPiecesByAreaDesc 把块按面积降序排列（稳定）。
func sortPiecesByAreaDesc(pieces []packing.Rect) {
	slices.SortStableFunc(pieces, func(a, b packing.Rect) int {
		return cmp.Compare(b.Area(), a.Area())
	})
}

// split 尝试切割一块，返回两个子块。两条边都小于最小尺寸的
// 两倍时无法切割。
func (g *PRPGenerator) split(piece packing.Rect) ([]packing.Rect, bool) {
	canVertical := piece.Width >= 2*g.minSize
	canHorizontal := piece.Height >= 2*g.minSize
	if !canVertical && !canHorizontal {
		return nil, false
	}

	if g.chooseVertical(piece.Width, piece.Height, canVertical, canHorizontal) {
		c := g.cutPosition(piece.Width)
		return []packing.Rect{
			packing.NewRect(piece.X, piece.Y, c, piece.Height),
			packing.NewRect(piece.X+c, piece.Y, piece.Width-c, piece.Height),
		}, true
	}
	c := g.cutPosition(piece.Height)
	return []packing.Rect{
		packing.NewRect(piece.X, piece.Y, piece.Width, c),
		packing.NewRect(piece.X, piece.Y+c, piece.Width, piece.Height-c),
	}, true
}

// chooseVertical 选择切割方向：优先切较长的维度，相等时随机。
func (g *PRPGenerator) chooseVertical(w, h int, canVertical, canHorizontal bool) bool {
	if canVertical && canHorizontal {
		if w > h {
			return true
		}
		if h > w {
			return false
		}
		return g.rng.Intn(2) == 0
	}
	return canVertical
}

// cutPosition 在 [minRatio, 1-minRatio] 区间内取切口位置，
// 区间无效时退回 [minSize, dim-minSize]。
func (g *PRPGenerator) cutPosition(dim int) int {
	lo := max(g.minSize, int(float64(dim)*g.minRatio))
	hi := min(dim-g.minSize, int(float64(dim)*(1.0-g.minRatio)))
	if lo > hi {
		lo = g.minSize
		hi = dim - g.minSize
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// addLeaf 把一块登记为最终的叶子矩形。
func (g *PRPGenerator) addLeaf(piece packing.Rect) {
	piece.ID = g.nextID
	g.nextID++
	g.leaves = append(g.leaves, piece)
}

// Container 返回容器尺寸。
func (g *PRPGenerator) Container() packing.Size {
	return packing.NewSize(g.width, g.height)
}

// Placements 返回带原始位置的叶子矩形（参考解）。
func (g *PRPGenerator) Placements() []packing.Rect {
	return g.leaves
}

// Shuffled 返回去掉位置、随机打乱顺序的尺寸副本。
// 这份列表才是交给求解器的输入。
func (g *PRPGenerator) Shuffled() []packing.Size {
	sizes := make([]packing.Size, len(g.leaves))
	for i, leaf := range g.leaves {
		sizes[i] = leaf.Size
	}
	g.rng.Shuffle(len(sizes), func(i, j int) {
		sizes[i], sizes[j] = sizes[j], sizes[i]
	})
	return sizes
}

// VerifyPartition 校验叶子恰好铺满容器且两两不重叠。
func (g *PRPGenerator) VerifyPartition() error {
	area := 0
	for i := range g.leaves {
		area += g.leaves[i].Area()
	}
	if area != g.width*g.height {
		return fmt.Errorf("partition area %d != container area %d", area, g.width*g.height)
	}
	for i := range g.leaves {
		for j := i + 1; j < len(g.leaves); j++ {
			if g.leaves[i].Intersects(g.leaves[j]) {
				return fmt.Errorf("leaves %d and %d overlap", g.leaves[i].ID, g.leaves[j].ID)
			}
		}
	}
	return nil
}

// Info 返回实例的一行摘要。
func (g *PRPGenerator) Info() string {
	var dims []string
	minArea, maxArea, sum := 0, 0, 0
	for i := range g.leaves {
		a := g.leaves[i].Area()
		if i == 0 || a < minArea {
			minArea = a
		}
		if a > maxArea {
			maxArea = a
		}
		sum += a
		dims = append(dims, fmt.Sprintf("%d×%d", g.leaves[i].Width, g.leaves[i].Height))
	}
	mean := 0.0
	if len(g.leaves) > 0 {
		mean = float64(sum) / float64(len(g.leaves))
	}
	return fmt.Sprintf("PRP %d×%d, %d rects (area min=%d max=%d mean=%.1f): %s",
		g.width, g.height, len(g.leaves), minArea, maxArea, mean, strings.Join(dims, ", "))
}
