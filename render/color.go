package render

import (
	"fmt"
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// rgbMix blends c1 towards c2; t is 0 for c1 and 1 for c2.
func rgbMix(c1, c2 color.Color, t float64) clr.Color {
	clr1, _ := clr.MakeColor(c1)
	clr2, _ := clr.MakeColor(c2)
	if (clr1.R == clr1.G && clr1.G == clr1.B) || (clr2.R == clr2.G && clr2.G == clr2.B) {
		return clr1.BlendRgb(clr2, t).Clamped()
	}
	return clr1.BlendLab(clr2, t).Clamped()
}

func lighten(src clr.Color, p float64) clr.Color {
	h, c, l := src.Hcl()
	return clr.Hcl(h, c, l+p).Clamped()
}

// ansi wraps s in a 24-bit foreground colour escape.
func ansi(c clr.Color, s string) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}

// rgb is an opaque colour.
func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
