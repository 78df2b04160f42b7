// Package bench 提供矩形装箱基准实例：Korf 的连续正方形基准、
// 基于 guillotine 切割的 Perfect Rectangle Packing 生成器，
// 以及文本格式的实例文件。
package bench

import "rectpacksolver/packing"

// KorfSquares 返回 Korf 基准的正方形集合：边长 1 到 n 各一个，
// ID 等于边长。
func KorfSquares(n int) []packing.Size {
	squares := make([]packing.Size, 0, n)
	for i := 1; i <= n; i++ {
		squares = append(squares, packing.NewSizeID(i, i, i))
	}
	return squares
}

// TotalArea 返回尺寸列表的面积之和。
func TotalArea(sizes []packing.Size) int {
	total := 0
	for i := range sizes {
		total += sizes[i].Area()
	}
	return total
}
