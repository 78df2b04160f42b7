package packing

// BottomLeft 是基线贪心求解器：对每个矩形按行扫描容器
//（y 为外层循环，x 为内层循环），放在第一个合法位置。
// 输出完全由输入与顺序决定。
type BottomLeft struct {
	solverBase
}

// NewBottomLeft 创建一个 Bottom-Left 求解器。
func NewBottomLeft(width, height int) (*BottomLeft, error) {
	base, err := newSolverBase(width, height)
	if err != nil {
		return nil, err
	}
	return &BottomLeft{solverBase: base}, nil
}

// findPosition 自下而上、自左而右扫描，返回第一个能放下 sz 的位置。
func (s *BottomLeft) findPosition(sz Size) (int, int, bool) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.canPlaceAt(sz, x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// Pack 依次放置所有矩形。只要有一个矩形找不到位置就立即失败，
// 失败时不保留任何部分放置。
func (s *BottomLeft) Pack(sizes []Size, order Order) bool {
	s.reset()
	if !validSizes(sizes) {
		return false
	}
	if totalArea(sizes) > s.width*s.height {
		return false
	}
	for _, sz := range orderedCopy(sizes, order) {
		x, y, ok := s.findPosition(sz)
		if !ok {
			s.reset()
			return false
		}
		s.placed = append(s.placed, Rect{Point: Point{X: x, Y: y}, Size: sz})
	}
	return true
}
