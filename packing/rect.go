package packing

import "fmt"

// Point 描述了二维空间中的一个位置。
type Point struct {
	// X 是在水平 x 轴上的位置。
	X int `json:"x"`
	// Y 是在垂直 y 轴上的位置。
	Y int `json:"y"`
}

// NewPoint 初始化一个具有指定坐标的新点。
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Eq 判断接收者和另一个点是否具有相同的值。
func (p *Point) Eq(point Point) bool {
	return p.X == point.X && p.Y == point.Y
}

// String 返回点的字符串表示形式。
func (p *Point) String() string {
	return fmt.Sprintf("[%v, %v]", p.X, p.Y)
}

// Size 描述了一个待放置矩形：不可变的尺寸加上标识符。
// 求解器只读取 Size，放置结果以 Rect 形式由求解器持有。
type Size struct {
	// Width 是在水平 x 轴上的尺寸。
	Width int `json:"width"`
	// Height 是在垂直 y 轴上的尺寸。
	Height int `json:"height"`
	// ID 是用户定义的标识符，用于区分此实例与其他实例。
	ID int `json:"id"`
}

// NewSize 创建具有指定尺寸的新尺寸对象。
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// NewSizeID 创建具有指定尺寸和唯一标识符的新尺寸对象。
func NewSizeID(id, width, height int) Size {
	return Size{ID: id, Width: width, Height: height}
}

// Eq 判断接收者和另一个尺寸是否具有相同的值。ID 字段被忽略。
func (sz *Size) Eq(size Size) bool {
	return sz.Width == size.Width && sz.Height == size.Height
}

// String 返回尺寸的字符串表示形式。
func (sz *Size) String() string {
	return fmt.Sprintf("[%v, %v]", sz.Width, sz.Height)
}

// Area 返回总面积（宽度 * 高度）。
func (sz *Size) Area() int {
	return sz.Width * sz.Height
}

// IsValid 报告尺寸的两条边是否都至少为 1。
func (sz *Size) IsValid() bool {
	return sz.Width >= 1 && sz.Height >= 1
}

// Rect 描述了一个已放置的矩形：左下角位置加尺寸。
// 坐标系原点在容器左下角，y 向上增长。
type Rect struct {
	// Point 表示矩形的左下角坐标。
	Point
	// Size 表示矩形的宽度和高度。
	Size
}

// NewRect 初始化一个使用指定点和尺寸值的新矩形。
func NewRect(x, y, w, h int) Rect {
	return Rect{
		Point: Point{X: x, Y: y},
		Size:  Size{Width: w, Height: h},
	}
}

// Eq 比较两个矩形以确定位置和尺寸是否相等。
func (r *Rect) Eq(rect Rect) bool {
	return r.Point.Eq(rect.Point) && r.Size.Eq(rect.Size)
}

// String 返回描述矩形的字符串。
func (r *Rect) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", r.X, r.Y, r.Width, r.Height)
}

// Right 返回矩形右边缘在 x 轴上的坐标。
func (r *Rect) Right() int {
	return r.X + r.Width
}

// Top 返回矩形上边缘在 y 轴上的坐标。
func (r *Rect) Top() int {
	return r.Y + r.Height
}

// Intersects 测试接收者是否与指定的矩形有任何重叠。
// 区间按开区间处理：仅共享边界不算重叠。
func (r *Rect) Intersects(rect Rect) bool {
	return rect.X < r.X+r.Width &&
		r.X < rect.X+rect.Width &&
		rect.Y < r.Y+r.Height &&
		r.Y < rect.Y+rect.Height
}

// Contains 测试指定的坐标是否在接收者的边界内。
func (r *Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.X+r.Width && r.Y <= y && y < r.Y+r.Height
}
