package packing

import (
	"fmt"
	"slices"
)

// segment 表示天际线上的一段水平区间。
// (x, width, height) 表示 [x, x+width) 已被填到高度 height。
type segment struct {
	x      int
	width  int
	height int
}

// end 返回段的右端坐标。
func (s segment) end() int {
	return s.x + s.width
}

// String 返回段的字符串表示形式。
func (s segment) String() string {
	return fmt.Sprintf("[%d→%d | h=%d]", s.x, s.end(), s.height)
}

// Skyline 维护已放置矩形的上轮廓，按水平段的有序序列存储。
// 设计为配合回溯增量使用：每次 Apply 都把前像压入撤销日志，
// Undo 精确恢复。
//
// 不变量：段首尾相接覆盖 [0, width)，相邻段高度不同，没有零宽段。
type Skyline struct {
	width    int
	height   int
	segments []segment
	history  [][]segment
}

// NewSkyline 创建覆盖整个容器宽度、高度为 0 的初始天际线。
func NewSkyline(width, height int) *Skyline {
	return &Skyline{
		width:    width,
		height:   height,
		segments: []segment{{x: 0, width: width, height: 0}},
	}
}

// IsFilled 报告容器是否已被完全填满。
func (s *Skyline) IsFilled() bool {
	return len(s.segments) == 1 && s.segments[0].height == s.height
}

// lowestLeftmost 返回最低且最靠左的段的下标。
func (s *Skyline) lowestLeftmost() int {
	best := 0
	for i := 1; i < len(s.segments); i++ {
		if s.segments[i].height < s.segments[best].height {
			best = i
		}
	}
	return best
}

// neighborHeights 返回下标 i 处段的左右邻居高度，越界邻居视为容器高度。
func (s *Skyline) neighborHeights(i int) (int, int) {
	left, right := s.height, s.height
	if i > 0 {
		left = s.segments[i-1].height
	}
	if i < len(s.segments)-1 {
		right = s.segments[i+1].height
	}
	return left, right
}

// valleys 返回所有严格低于两侧邻居的段下标（边界邻居按容器高度处理）。
func (s *Skyline) valleys() []int {
	var out []int
	for i := range s.segments {
		if s.segments[i].height == s.height {
			continue
		}
		left, right := s.neighborHeights(i)
		if s.segments[i].height < left && s.segments[i].height < right {
			out = append(out, i)
		}
	}
	return out
}

// NarrowestValley 返回分支所用山谷的段下标：宽度最小的严格山谷，
// 宽度相同取更低者，再相同取更靠左者。没有严格山谷时退回
// 最低最靠左的段。天际线已满时返回 (0, false)。
func (s *Skyline) NarrowestValley() (int, bool) {
	if s.IsFilled() {
		return 0, false
	}
	vs := s.valleys()
	if len(vs) == 0 {
		return s.lowestLeftmost(), true
	}
	best := vs[0]
	for _, i := range vs[1:] {
		a, b := s.segments[i], s.segments[best]
		if a.width != b.width {
			if a.width < b.width {
				best = i
			}
			continue
		}
		if a.height != b.height {
			if a.height < b.height {
				best = i
			}
			continue
		}
		if a.x < b.x {
			best = i
		}
	}
	return best, true
}

// CeilingHeight 返回山谷的顶棚高度 = min(左邻高度, 右邻高度)。
// 天际线越过该山谷之前必须至少填到这个高度。
func (s *Skyline) CeilingHeight(i int) int {
	left, right := s.neighborHeights(i)
	return min(left, right)
}

// AvailableWidth 返回从 (x, h) 起向右、高度保持为 h 的连续段的总宽度，
// 即贴着谷底放置矩形时可用的最大宽度。
func (s *Skyline) AvailableWidth(x, h int) int {
	total := 0
	for i := range s.segments {
		if s.segments[i].x < x {
			continue
		}
		if s.segments[i].height != h {
			break
		}
		total += s.segments[i].width
	}
	return total
}

// Apply 在放置 rect 后重写天际线：[rect.X, rect.X+rect.Width) 覆盖的
// 水平带被抬升到 rect.Y+rect.Height。当前段序列先压入撤销日志。
func (s *Skyline) Apply(r Rect) {
	s.history = append(s.history, slices.Clone(s.segments))

	x0 := r.X
	x1 := r.X + r.Width
	raised := r.Y + r.Height

	next := make([]segment, 0, len(s.segments)+2)
	for _, seg := range s.segments {
		if seg.end() <= x0 || seg.x >= x1 {
			next = append(next, seg)
			continue
		}
		// 左侧越出水平带的部分保持原高
		if seg.x < x0 {
			next = append(next, segment{x: seg.x, width: x0 - seg.x, height: seg.height})
		}
		lo := max(seg.x, x0)
		hi := min(seg.end(), x1)
		next = append(next, segment{x: lo, width: hi - lo, height: raised})
		// 右侧越出水平带的部分保持原高
		if seg.end() > x1 {
			next = append(next, segment{x: x1, width: seg.end() - x1, height: seg.height})
		}
	}
	s.segments = mergeSegments(next)
}

// Undo 从撤销日志恢复上一次 Apply 之前的段序列。
// 日志为空说明 Apply/Undo 不配对，属于内部错误。
func (s *Skyline) Undo() {
	if len(s.history) == 0 {
		panic("skyline: undo without matching apply")
	}
	s.segments = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
}

// mergeSegments 合并相邻等高段。
func mergeSegments(segs []segment) []segment {
	if len(segs) == 0 {
		return segs
	}
	merged := segs[:1]
	for _, seg := range segs[1:] {
		if seg.height == merged[len(merged)-1].height {
			merged[len(merged)-1].width += seg.width
		} else {
			merged = append(merged, seg)
		}
	}
	return merged
}

// checkInvariants 校验天际线不变量，违反时返回描述性错误。
func (s *Skyline) checkInvariants() error {
	if len(s.segments) == 0 {
		return fmt.Errorf("skyline: no segments")
	}
	if s.segments[0].x != 0 {
		return fmt.Errorf("skyline: first segment starts at %d", s.segments[0].x)
	}
	for i, seg := range s.segments {
		if seg.width < 1 {
			return fmt.Errorf("skyline: zero-width segment %v", seg)
		}
		if seg.height < 0 || seg.height > s.height {
			return fmt.Errorf("skyline: segment height out of range %v", seg)
		}
		if i > 0 {
			prev := s.segments[i-1]
			if prev.end() != seg.x {
				return fmt.Errorf("skyline: gap between %v and %v", prev, seg)
			}
			if prev.height == seg.height {
				return fmt.Errorf("skyline: unmerged neighbors %v and %v", prev, seg)
			}
		}
	}
	if last := s.segments[len(s.segments)-1]; last.end() != s.width {
		return fmt.Errorf("skyline: last segment ends at %d, want %d", last.end(), s.width)
	}
	return nil
}
