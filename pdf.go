package main

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"rectpacksolver/packing"
)

// 页面布局常量（A4 横向，单位 mm）。
const (
	pdfPageWidth    = 297.0
	pdfPageHeight   = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 15.0
	pdfHeaderHeight = 12.0
	pdfDrawAreaTop  = pdfMarginTop + pdfHeaderHeight + 5.0
)

// ExportSolutionPDF 把求解结果画成单页 PDF 布局图：
// 标题、统计行，下方按比例缩放绘制容器和已放置矩形。
func ExportSolutionPDF(sol packing.Solver, title, path string) error {
	if sol == nil {
		return fmt.Errorf("no solver to export")
	}
	c := sol.Container()

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pdfMarginBottom)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(pdfMarginLeft, pdfMarginTop)
	pdf.CellFormat(pdfPageWidth-pdfMarginLeft-pdfMarginRight, pdfHeaderHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pdfMarginLeft, pdfMarginTop+pdfHeaderHeight)
	stats := fmt.Sprintf("Container: %d x %d | Rects: %d | Wasted: %d",
		c.Width, c.Height, len(sol.Placed()), sol.Wasted())
	pdf.CellFormat(pdfPageWidth-pdfMarginLeft-pdfMarginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pdfPageWidth - pdfMarginLeft - pdfMarginRight
	drawHeight := pdfPageHeight - pdfDrawAreaTop - pdfMarginBottom
	scale := math.Min(drawWidth/float64(c.Width), drawHeight/float64(c.Height))

	canvasW := float64(c.Width) * scale
	canvasH := float64(c.Height) * scale
	offsetX := pdfMarginLeft + (drawWidth-canvasW)/2
	offsetY := pdfDrawAreaTop

	// 容器背景
	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	pdf.SetFont("Helvetica", "", 8)
	for i, r := range sol.Placed() {
		col := solutionPalette[i%len(solutionPalette)]
		pw := float64(r.Width) * scale
		ph := float64(r.Height) * scale
		px := offsetX + float64(r.X)*scale
		// PDF 的 y 轴向下，容器的向上
		py := offsetY + float64(c.Height-r.Y-r.Height)*scale

		pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		pdf.SetTextColor(20, 20, 20)
		pdf.Text(px+pw/2-1.5, py+ph/2+1.5, fmt.Sprintf("%d", r.ID))
	}

	return pdf.OutputFileAndClose(path)
}
