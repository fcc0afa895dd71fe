package render

import colorful "github.com/lucasb-eyer/go-colorful"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// BlendLab interpolates in CIE-L*a*b* space, which keeps perceived
// brightness steady across a gradient
func (dst RGB) BlendLab(src RGB, t float64) RGB {
	if t <= 0 {
		return dst
	}
	if t >= 1 {
		return src
	}
	c := dst.toColorful().BlendLab(src.toColorful(), t).Clamped()
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
