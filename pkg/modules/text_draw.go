package modules

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// fallbackGlyphWidth 字体不可用时每个字符的估算宽度（相对字号）
const fallbackGlyphWidth = 0.55

// measureText 返回文本宽度，face 为 nil 时按字号估算
func measureText(s string, face *text.GoTextFace, size float64) float64 {
	if face == nil {
		return float64(len([]rune(s))) * size * fallbackGlyphWidth
	}
	w, _ := text.Measure(s, face, 0)
	return w
}

// drawText 在 (x, y) 绘制一行文本
//
// 参数:
//   - primary: 水平对齐（AlignStart 左对齐，AlignCenter 居中，AlignEnd 右对齐）
//   - y 为文本垂直中心
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, primary text.Align, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = primary
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
