package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/skyfold/orrery/vmath"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// ToTcell converts to a tcell 24-bit color
func (c RGB) ToTcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Dim scales the color toward black; factor 1 keeps it, 0 extinguishes it.
// Stands in for alpha over a black background.
func (c RGB) Dim(factor float64) RGB {
	factor = vmath.Clamp(factor, 0, 1)
	return fromColorful(RGBBlack.colorful().BlendRgb(c.colorful(), factor))
}

// Blend interpolates toward other; t=0 keeps c, t=1 yields other
func (c RGB) Blend(other RGB, t float64) RGB {
	t = vmath.Clamp(t, 0, 1)
	return fromColorful(c.colorful().BlendRgb(other.colorful(), t))
}
