package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// 每个终端字符格对应的模拟像素尺寸（字符约为 1:2 的竖长方形）
const (
	cellWidth  = 4.0
	cellHeight = 8.0
)

// 亮度阈值对应的填充字符，从暗到亮
var shades = []rune{'░', '▒', '▓', '█'}

// termCanvas 把粒子线段累积到终端字符格上
//
// 每个线段把颜色加到终点所在的格子里，每帧按 decay 衰减形成拖尾。
// 只由主循环 goroutine 访问。
type termCanvas struct {
	cols, rows int
	r, g, b    []float64
	gain       float64
}

func newTermCanvas(cols, rows int, gain float64) *termCanvas {
	c := &termCanvas{gain: gain}
	c.resize(cols, rows)
	return c
}

// resize 重新分配字符格缓冲区并清空
func (c *termCanvas) resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	n := c.cols * c.rows
	c.r = make([]float64, n)
	c.g = make([]float64, n)
	c.b = make([]float64, n)
}

// pixelSize 返回模拟绘制表面的尺寸
func (c *termCanvas) pixelSize() (int, int) {
	return int(float64(c.cols) * cellWidth), int(float64(c.rows) * cellHeight)
}

// StrokeSegment 实现 vortex.Canvas
func (c *termCanvas) StrokeSegment(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if clr.A == 0 {
		return
	}
	col, row := int(x1/cellWidth), int(y1/cellHeight)
	if x1 < 0 || y1 < 0 || col >= c.cols || row >= c.rows {
		return
	}
	i := row*c.cols + col
	a := float64(clr.A) / 255 * width * c.gain
	c.r[i] += float64(clr.R) / 255 * a
	c.g[i] += float64(clr.G) / 255 * a
	c.b[i] += float64(clr.B) / 255 * a
}

// decay 按比例衰减所有格子的亮度
func (c *termCanvas) decay(f float64) {
	for i := range c.r {
		c.r[i] *= f
		c.g[i] *= f
		c.b[i] *= f
	}
}

// cell 返回格子的显示字符和颜色，暗于阈值时返回空格
func (c *termCanvas) cell(col, row int) (rune, tcell.Color) {
	i := row*c.cols + col
	r, g, b := c.r[i], c.g[i], c.b[i]
	level := max(r, g, b)
	if level < 0.05 {
		return ' ', tcell.ColorDefault
	}

	shade := shades[min(int(level*float64(len(shades))), len(shades)-1)]
	// 归一化到最亮通道，保持色相
	scale := 255 / max(level, 1)
	return shade, tcell.NewRGBColor(int32(min(r*scale, 255)), int32(min(g*scale, 255)), int32(min(b*scale, 255)))
}

// flush 把所有格子写到屏幕
func (c *termCanvas) flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			ch, fg := c.cell(col, row)
			screen.SetContent(col, row, ch, nil, tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
		}
	}
}
