package packing

import "slices"

// PRPStats 记录一次 Perfect Rectangle Packing 搜索的统计信息。
type PRPStats struct {
	// Explored 是访问过的搜索节点数。
	Explored int
	// EmptyValleyPrunes 是没有任何矩形能放进山谷时的剪枝数。
	EmptyValleyPrunes int
	// AreaPrunes 是规则 1（山谷面积检查）的剪枝数。
	AreaPrunes int
	// PropagationPrunes 是规则 3（全局山谷传播）的剪枝数。
	PropagationPrunes int
	// DeadSpacePrunes 是规则 4（死区检查）的剪枝数。
	DeadSpacePrunes int
}

// PRPSolver 用 DFS 加回溯求解 Perfect Rectangle Packing：
// 矩形面积之和恰好等于容器面积，问完美铺满是否存在。
// 分支始终在当前天际线最窄的山谷上进行，并应用 Hougardy 的四条规则：
//
//	规则 1：山谷面积检查 — 兼容矩形的总面积必须盖得住山谷
//	规则 2：对称性破缺 — 第一个矩形留在容器左半边
//	规则 3：全局传播 — 每个山谷都必须仍有矩形能覆盖
//	规则 4：死区检查 — 放置后山谷的残余空间必须能被覆盖
//
// 未放置矩形始终保存在列表前缀 rects[0:n] 中，放置即与尾部交换，
// 搜索过程中不做任何列表复制。
type PRPSolver struct {
	solverBase

	sky   *Skyline
	stats PRPStats
}

// NewPRPSolver 创建一个 PRP 求解器。
func NewPRPSolver(width, height int) (*PRPSolver, error) {
	base, err := newSolverBase(width, height)
	if err != nil {
		return nil, err
	}
	return &PRPSolver{
		solverBase: base,
		sky:        NewSkyline(width, height),
	}, nil
}

// Stats 返回最近一次 Pack 的搜索统计。
func (s *PRPSolver) Stats() PRPStats {
	return s.stats
}

// Skyline 返回当前天际线。
func (s *PRPSolver) Skyline() *Skyline {
	return s.sky
}

// place 放置矩形并更新天际线。
func (s *PRPSolver) place(sz Size, x, y int) {
	r := Rect{Point: Point{X: x, Y: y}, Size: sz}
	s.placed = append(s.placed, r)
	s.sky.Apply(r)
}

// unplace 撤销最近一次放置。回溯时调用。
func (s *PRPSolver) unplace() {
	s.placed = s.placed[:len(s.placed)-1]
	s.sky.Undo()
}

// valleyAreaCheck 实现规则 1：未放置且与山谷兼容（宽度不超过山谷段宽、
// 高度不超过剩余高度）的矩形总面积，必须不小于把山谷填到顶棚
// 所需的最小面积。面积不够时这个山谷永远填不满。
func (s *PRPSolver) valleyAreaCheck(valley int, rects []Size, n int) bool {
	v := s.sky.segments[valley]
	ceiling := s.sky.CeilingHeight(valley)
	needed := v.width * (ceiling - v.height)

	availH := s.height - v.height
	compatible := 0
	for i := 0; i < n; i++ {
		if rects[i].Width <= v.width && rects[i].Height <= availH {
			compatible += rects[i].Area()
		}
	}
	return compatible >= needed
}

// propagationOK 实现规则 3：放置之后，天际线上每个未满的段都必须
// 还有至少一个未放置矩形能放进去，否则该分支无解。
func (s *PRPSolver) propagationOK(rects []Size, n int) bool {
	for _, seg := range s.sky.segments {
		if seg.height == s.height {
			continue
		}
		availH := s.height - seg.height
		availW := s.sky.AvailableWidth(seg.x, seg.height)

		covered := false
		for i := 0; i < n; i++ {
			if rects[i].Width <= availW && rects[i].Height <= availH {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// deadSpaceOK 实现规则 4：放下宽度小于山谷可用宽度的矩形后，
// 谷底残余的条带必须能被其他某个未放置矩形覆盖。
func (s *PRPSolver) deadSpaceOK(rects []Size, n, exclude, restWidth, availH int) bool {
	if restWidth == 0 {
		return true
	}
	for i := 0; i < n; i++ {
		if i == exclude {
			continue
		}
		if rects[i].Width <= restWidth && rects[i].Height <= availH {
			return true
		}
	}
	return false
}

// candidates 收集能放进山谷的未放置矩形下标，按精确匹配优先
//（宽度恰好等于可用宽度的先试，它一步吃掉整个山谷）、
// 再按面积降序排列，并按尺寸去重。排序是稳定的。
func (s *PRPSolver) candidates(rects []Size, n, availW, availH int) []int {
	var out []int
	for i := 0; i < n; i++ {
		if rects[i].Width <= availW && rects[i].Height <= availH {
			out = append(out, i)
		}
	}
	if len(out) == 0 {
		return out
	}

	slices.SortStableFunc(out, func(a, b int) int {
		exactA := rects[a].Width == availW
		exactB := rects[b].Width == availW
		if exactA != exactB {
			if exactA {
				return -1
			}
			return 1
		}
		return rects[b].Area() - rects[a].Area()
	})

	seen := make(map[Size]bool, len(out))
	deduped := out[:0]
	for _, idx := range out {
		dims := NewSize(rects[idx].Width, rects[idx].Height)
		if !seen[dims] {
			seen[dims] = true
			deduped = append(deduped, idx)
		}
	}
	return deduped
}

// dfs 是递归搜索。rects[0:n] 是未放置的矩形，first 表示还没有
// 放置过任何矩形。
func (s *PRPSolver) dfs(rects []Size, n int, first bool) bool {
	s.stats.Explored++

	if s.sky.IsFilled() {
		return true
	}

	// 最窄的山谷约束最强，优先分支
	valley, _ := s.sky.NarrowestValley()
	xv := s.sky.segments[valley].x
	hv := s.sky.segments[valley].height

	// 规则 1
	if !s.valleyAreaCheck(valley, rects, n) {
		s.stats.AreaPrunes++
		return false
	}

	availW := s.sky.AvailableWidth(xv, hv)
	availH := s.height - hv

	cands := s.candidates(rects, n, availW, availH)
	if len(cands) == 0 {
		s.stats.EmptyValleyPrunes++
		return false
	}

	for _, idx := range cands {
		sz := rects[idx]

		// 规则 2
		if first && xv > (s.width-sz.Width)/2 {
			continue
		}

		// 规则 4
		if !s.deadSpaceOK(rects, n, idx, availW-sz.Width, availH) {
			s.stats.DeadSpacePrunes++
			continue
		}

		// 放置并把矩形交换到未放置前缀之外
		rects[idx], rects[n-1] = rects[n-1], rects[idx]
		s.place(sz, xv, hv)

		// 规则 3
		if !s.propagationOK(rects, n-1) {
			s.stats.PropagationPrunes++
			s.unplace()
			rects[idx], rects[n-1] = rects[n-1], rects[idx]
			continue
		}

		if s.dfs(rects, n-1, false) {
			return true
		}

		s.unplace()
		rects[idx], rects[n-1] = rects[n-1], rects[idx]
	}
	return false
}

// Pack 尝试完美铺满容器。面积之和不等于容器面积时立即失败，
// 不展开任何搜索节点。
func (s *PRPSolver) Pack(sizes []Size, order Order) bool {
	s.reset()
	s.stats = PRPStats{}
	s.sky = NewSkyline(s.width, s.height)

	if !validSizes(sizes) {
		return false
	}
	if totalArea(sizes) != s.width*s.height {
		return false
	}

	rects := orderedCopy(sizes, order)
	return s.dfs(rects, len(rects), true)
}
