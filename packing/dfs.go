package packing

// DFSStats 记录一次 DFS 搜索的统计信息。
type DFSStats struct {
	// Explored 是访问过的搜索节点数。
	Explored int
	// AreaPrunes 是因剩余面积超过空闲面积而剪掉的节点数。
	AreaPrunes int
	// SymmetrySkips 是对称性破缺跳过的候选位置数。
	SymmetrySkips int
	// BoundPrunes 是被 bounding function 剪掉的节点数。
	BoundPrunes int
}

// DFSSolver 用带回溯的深度优先搜索精确求解矩形装箱。
// 只要解存在就一定能找到，代价是最坏情况下的指数复杂度。
// 搜索带四项加速：
//  1. 对称性破缺：第一个矩形限制在左下四分之一象限；
//  2. 面积剪枝：剩余矩形面积超过空闲面积时剪枝；
//  3. bounding functions：Korf 的一维松弛（水平 + 垂直），
//     按 Martello & Toth 的下界算法估计必然浪费的面积；
//  4. 增量状态：放置与回溯只更新受影响的行列容量，不重算全局。
type DFSSolver struct {
	solverBase

	stats DFSStats

	// free 是当前空闲面积。
	free int
	// capH[y] 是第 y 行剩余的水平容量，初始为容器宽度。
	capH []int
	// capV[x] 是第 x 列剩余的垂直容量，初始为容器高度。
	capV []int
}

// NewDFSSolver 创建一个 DFS 求解器。
func NewDFSSolver(width, height int) (*DFSSolver, error) {
	base, err := newSolverBase(width, height)
	if err != nil {
		return nil, err
	}
	s := &DFSSolver{solverBase: base}
	s.resetState()
	return s, nil
}

// Stats 返回最近一次 Pack 的搜索统计。
func (s *DFSSolver) Stats() DFSStats {
	return s.stats
}

// resetState 把增量状态恢复到空容器。
func (s *DFSSolver) resetState() {
	s.reset()
	s.stats = DFSStats{}
	s.free = s.width * s.height
	s.capH = make([]int, s.height)
	for y := range s.capH {
		s.capH[y] = s.width
	}
	s.capV = make([]int, s.width)
	for x := range s.capV {
		s.capV[x] = s.height
	}
}

// bestBlocker 在所有与 [x, x+w) × [y, y+h) 相交的已放置矩形中，
// 返回右边缘延伸最远者的右边缘坐标；无遮挡时返回 -1。
// 不在第一个遮挡处停下，而是取最远者以最大化跳跃距离。
func (s *DFSSolver) bestBlocker(x, y, w, h int) int {
	best := -1
	for i := range s.placed {
		p := &s.placed[i]
		if x < p.X+p.Width && x+w > p.X &&
			y < p.Y+p.Height && y+h > p.Y {
			if p.X+p.Width > best {
				best = p.X + p.Width
			}
		}
	}
	return best
}

// place 放置矩形并增量更新空闲面积与行列容量。
func (s *DFSSolver) place(sz Size, x, y int) {
	s.placed = append(s.placed, Rect{Point: Point{X: x, Y: y}, Size: sz})
	s.free -= sz.Area()
	for cy := y; cy < y+sz.Height; cy++ {
		s.capH[cy] -= sz.Width
	}
	for cx := x; cx < x+sz.Width; cx++ {
		s.capV[cx] -= sz.Height
	}
}

// unplace 撤销最近一次放置，恢复增量状态。回溯时调用。
func (s *DFSSolver) unplace() {
	last := s.placed[len(s.placed)-1]
	s.placed = s.placed[:len(s.placed)-1]
	s.free += last.Area()
	for cy := last.Y; cy < last.Y+last.Height; cy++ {
		s.capH[cy] += last.Width
	}
	for cx := last.X; cx < last.X+last.Width; cx++ {
		s.capV[cx] += last.Height
	}
}

// sliceItems 聚合未放置矩形在指定方向上的切片面积。
// 水平方向：宽 w 高 h 的矩形产生 h 条宽度为 w 的切片，
// items[w] 累加这些切片的总面积 w*h；垂直方向角色互换。
func sliceItems(rects []Size, horizontal bool) map[int]int {
	items := make(map[int]int)
	for i := range rects {
		if horizontal {
			items[rects[i].Width] += rects[i].Width * rects[i].Height
		} else {
			items[rects[i].Height] += rects[i].Height * rects[i].Width
		}
	}
	return items
}

// martelloToth 计算浪费面积的下界（一维 cutting-stock 松弛）。
// bins[c] 是容量恰为 c 的所有行（或列）的总容量；从小到大扫描尺寸，
// 小容量 bin 装不满的部分成为浪费，大 item 的盈余向更大的 bin 结转。
func martelloToth(caps []int, items map[int]int, maxSize int) int {
	bins := make(map[int]int)
	for _, c := range caps {
		if c > 0 {
			bins[c] += c
		}
	}

	waste := 0
	carry := 0
	for size := 1; size <= maxSize; size++ {
		b := bins[size]
		t := carry + items[size]
		if b > t {
			waste += b - t
			carry = 0
		} else {
			carry = t - b
		}
	}
	return waste
}

// boundPrune 在两个方向上应用 bounding function。
// 可读作：空闲面积必须同时容纳剩余矩形的面积和必然浪费的面积，
// 否则该分支不可能有解。
func (s *DFSSolver) boundPrune(rects []Size, depth, remaining int) bool {
	itemsH := sliceItems(rects[depth:], true)
	if remaining+martelloToth(s.capH, itemsH, s.width) > s.free {
		return true
	}
	itemsV := sliceItems(rects[depth:], false)
	if remaining+martelloToth(s.capV, itemsV, s.height) > s.free {
		return true
	}
	return false
}

// dfs 是纯按下标驱动的递归搜索。rects[depth] 是当前要放置的矩形，
// remaining 是 rects[depth:] 的面积之和。
func (s *DFSSolver) dfs(rects []Size, depth, remaining int) bool {
	s.stats.Explored++

	if depth == len(rects) {
		return true
	}
	if remaining > s.free {
		s.stats.AreaPrunes++
		return false
	}
	if s.boundPrune(rects, depth, remaining) {
		s.stats.BoundPrunes++
		return false
	}

	sz := rects[depth]
	next := remaining - sz.Area()

	limitX := s.width - sz.Width
	limitY := s.height - sz.Height

	// 对称性破缺：容器为空时只扫描左下四分之一，
	// 消除空容器的旋转/镜像对称。
	if len(s.placed) == 0 {
		symX := limitX / 2
		symY := limitY / 2
		s.stats.SymmetrySkips += (limitX-symX)*(limitY+1) + (limitY-symY)*(symX+1)
		limitX = symX
		limitY = symY
	}

	for y := 0; y <= limitY; y++ {
		x := 0
		for x <= limitX {
			jump := s.bestBlocker(x, y, sz.Width, sz.Height)
			if jump < 0 {
				s.place(sz, x, y)
				if s.dfs(rects, depth+1, next) {
					return true
				}
				s.unplace()
				x++
			} else {
				// 跳过一定会与同一遮挡矩形冲突的位置
				x = jump
			}
		}
	}
	return false
}

// Pack 用 DFS 放置所有矩形。
func (s *DFSSolver) Pack(sizes []Size, order Order) bool {
	s.resetState()
	if !validSizes(sizes) {
		return false
	}

	rects := orderedCopy(sizes, order)
	if s.dfs(rects, 0, totalArea(rects)) {
		return true
	}
	s.reset()
	return false
}
