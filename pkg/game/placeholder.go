package game

import (
	"image"
	"image/color"
	"math"
	"path"
	"strings"

	"github.com/decker502/portfolio/internal/noise"
	"github.com/lucasb-eyer/go-colorful"
)

// PlaceholderKind 占位图类型
type PlaceholderKind int

const (
	PlaceholderGeneric PlaceholderKind = iota
	PlaceholderMoon
	PlaceholderSun
	PlaceholderGalaxy
)

// 占位图尺寸
const (
	placeholderDiscSize     = 480
	placeholderGalaxyWidth  = 640
	placeholderGalaxyHeight = 320
)

// placeholderSeed 固定种子，同一类型的占位图每次生成结果相同
const placeholderSeed = 305

// PlaceholderKindFor 根据图片路径猜测占位图类型
func PlaceholderKindFor(imagePath string) PlaceholderKind {
	name := strings.ToLower(path.Base(imagePath))
	switch {
	case strings.Contains(name, "moon"):
		return PlaceholderMoon
	case strings.Contains(name, "sun"):
		return PlaceholderSun
	case strings.Contains(name, "galaxy"), strings.Contains(name, "centaurus"):
		return PlaceholderGalaxy
	}
	return PlaceholderGeneric
}

// GeneratePlaceholder 生成程序化占位图
//
//   - Moon: 灰色圆盘，噪声明暗模拟月海和环形山
//   - Sun: 橙色圆盘，临边昏暗 + 米粒组织噪声
//   - Galaxy: 椭圆星系光晕 + 中央尘埃带 + 随机星点
//   - Generic: 深蓝到紫色的渐变
func GeneratePlaceholder(kind PlaceholderKind) *image.RGBA {
	src := noise.NewSimplex(placeholderSeed)
	switch kind {
	case PlaceholderMoon:
		return drawMoon(src, placeholderDiscSize)
	case PlaceholderSun:
		return drawSun(src, placeholderDiscSize)
	case PlaceholderGalaxy:
		return drawGalaxy(src, placeholderGalaxyWidth, placeholderGalaxyHeight)
	}
	return drawGradient(placeholderGalaxyWidth, placeholderGalaxyHeight)
}

// discCoord 将像素坐标映射到以圆盘中心为原点、半径为 1 的坐标
func discCoord(x, y, size int) (float64, float64) {
	r := float64(size) / 2 * 0.92
	c := float64(size) / 2
	return (float64(x) + 0.5 - c) / r, (float64(y) + 0.5 - c) / r
}

// fbm 多倍频噪声，返回 [-1, 1]
func fbm(src noise.Source, x, y float64, octaves int) float64 {
	sum, amp, norm := 0.0, 1.0, 0.0
	for i := 0; i < octaves; i++ {
		sum += src.Noise3D(x, y, float64(i)*7.1) * amp
		norm += amp
		x, y, amp = x*2, y*2, amp*0.5
	}
	return sum / norm
}

func drawMoon(src noise.Source, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := discCoord(x, y, size)
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			// 球面法线近似的光照 + 噪声纹理
			light := 0.55 + 0.45*math.Sqrt(1-d2)
			maria := fbm(src, dx*2.2, dy*2.2, 4)
			craters := math.Abs(fbm(src, dx*9, dy*9, 3))
			l := light * (0.62 + 0.18*maria - 0.12*craters)
			c := colorful.Hsl(40, 0.06, clamp01(l))
			img.SetRGBA(x, y, edgeBlend(c, d2))
		}
	}
	return img
}

func drawSun(src noise.Source, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	core := colorful.Color{R: 1, G: 0.86, B: 0.55}
	limb := colorful.Color{R: 0.85, G: 0.32, B: 0.05}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := discCoord(x, y, size)
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			mu := math.Sqrt(1 - d2)
			granules := fbm(src, dx*24, dy*24, 2)
			c := limb.BlendLab(core, clamp01(math.Pow(mu, 0.6)+0.06*granules))
			img.SetRGBA(x, y, edgeBlend(c, d2))
		}
	}
	return img
}

func drawGalaxy(src noise.Source, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bulge := colorful.Color{R: 1, G: 0.92, B: 0.78}
	halo := colorful.Color{R: 0.35, G: 0.45, B: 0.8}
	dust := colorful.Color{R: 0.25, G: 0.12, B: 0.05}

	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// 椭圆距离，星系稍微倾斜
			px, py := (float64(x)-cx)/cx, (float64(y)-cy)/cy
			rx := px*math.Cos(0.35) + py*math.Sin(0.35)
			ry := -px*math.Sin(0.35) + py*math.Cos(0.35)
			r := math.Sqrt(rx*rx/0.5 + ry*ry/0.8)

			glow := math.Exp(-r*r*3.2) * (0.85 + 0.15*fbm(src, rx*4, ry*4, 3))
			c := halo.BlendLab(bulge, clamp01(math.Exp(-r*r*9)))

			// 中央尘埃带
			lane := math.Exp(-math.Pow((ry-0.04*fbm(src, rx*3, 0, 2))/0.07, 2)) * math.Exp(-rx*rx*1.5)
			c = c.BlendRgb(dust, clamp01(lane*0.85))

			v := clamp01(glow * (1 - 0.6*lane))
			bg := colorful.Color{R: 0.01, G: 0.01, B: 0.03}
			out := bg.BlendRgb(c, v)

			// 星点
			if src.Noise3D(float64(x)*0.9, float64(y)*0.9, 42) > 0.82 {
				out = out.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.8)
			}
			img.SetRGBA(x, y, rgba(out.Clamped(), 255))
		}
	}
	return img
}

func drawGradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	from, _ := colorful.Hex("#0f172a")
	to, _ := colorful.Hex("#581c87")
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := (float64(x)/float64(w) + float64(y)/float64(h)) / 2
			img.SetRGBA(x, y, rgba(from.BlendLab(to, t).Clamped(), 255))
		}
	}
	return img
}

// edgeBlend 在圆盘边缘 1 像素内做抗锯齿
func edgeBlend(c colorful.Color, d2 float64) color.RGBA {
	alpha := clamp01((1 - math.Sqrt(d2)) * placeholderDiscSize * 0.46)
	return rgba(c.Clamped(), uint8(alpha*255+0.5))
}

// rgba 转为预乘 alpha 的 color.RGBA（image.RGBA 的存储格式）
func rgba(c colorful.Color, a uint8) color.RGBA {
	r, g, b := c.RGB255()
	f := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(r)*f + 0.5),
		G: uint8(float64(g)*f + 0.5),
		B: uint8(float64(b)*f + 0.5),
		A: a,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
