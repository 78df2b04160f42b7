package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"rectpacksolver/packing"
)

// solutionPalette 是布局图的固定配色，按放置顺序循环使用。
// 与 PDF 导出使用同一组颜色。
var solutionPalette = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 255},  // green
	{R: 33, G: 150, B: 243, A: 255}, // blue
	{R: 255, G: 152, B: 0, A: 255},  // orange
	{R: 156, G: 39, B: 176, A: 255}, // purple
	{R: 0, G: 188, B: 212, A: 255},  // cyan
	{R: 244, G: 67, B: 54, A: 255},  // red
	{R: 255, G: 235, B: 59, A: 255}, // yellow
	{R: 121, G: 85, B: 72, A: 255},  // brown
}

// RenderSolutionPNG 把求解结果渲染为 PNG 布局图。
// scale 是每个单位格子的像素数。容器坐标系原点在左下、y 向上，
// 图像坐标系原点在左上，绘制时对 y 做翻转。
func RenderSolutionPNG(sol packing.Solver, path string, scale int) error {
	if sol == nil {
		return fmt.Errorf("no solver to render")
	}
	if scale < 2 {
		scale = 2
	}
	c := sol.Container()

	background := color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	border := color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	dst := imaging.New(c.Width*scale, c.Height*scale, background)

	for i, r := range sol.Placed() {
		x0 := r.X * scale
		y0 := (c.Height - r.Y - r.Height) * scale
		outer := image.Rect(x0, y0, x0+r.Width*scale, y0+r.Height*scale)

		draw.Draw(dst, outer, &image.Uniform{border}, image.Point{}, draw.Src)
		inner := outer.Inset(1)
		if !inner.Empty() {
			fill := solutionPalette[i%len(solutionPalette)]
			draw.Draw(dst, inner, &image.Uniform{fill}, image.Point{}, draw.Src)
		}
	}

	return imaging.Save(dst, path)
}
