package renderers

import (
	"math"

	"github.com/skyfold/orrery/render"
)

// fillDisc rasterizes a filled world-space circle. The per-axis radii
// differ because cells are taller than wide; containment is tested against
// the resulting cell-space ellipse. Sub-cell discs still claim their
// center cell so small bodies never vanish.
func fillDisc(buf *render.Buffer, view render.View, wx, wy, radius float64, fill rune, color render.RGB) {
	cx, cy := view.WorldToCellF(wx, wy)
	rx, ry := view.RadiusToCells(radius)

	if rx < 0.5 || ry < 0.5 {
		buf.Set(int(math.Round(cx)), int(math.Round(cy)), fill, color)
		return
	}

	minX := int(math.Floor(cx - rx))
	maxX := int(math.Ceil(cx + rx))
	minY := int(math.Floor(cy - ry))
	maxY := int(math.Ceil(cy + ry))

	for y := minY; y <= maxY; y++ {
		dy := (float64(y) - cy) / ry
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) - cx) / rx
			if dx*dx+dy*dy <= 1 {
				buf.Set(x, y, fill, color)
			}
		}
	}
}

// fillDiscBg tints cell backgrounds over the disc area, leaving runes and
// foregrounds for higher layers.
func fillDiscBg(buf *render.Buffer, view render.View, wx, wy, radius float64, bg render.RGB) {
	cx, cy := view.WorldToCellF(wx, wy)
	rx, ry := view.RadiusToCells(radius)

	if rx < 0.5 || ry < 0.5 {
		buf.SetBg(int(math.Round(cx)), int(math.Round(cy)), bg)
		return
	}

	minX := int(math.Floor(cx - rx))
	maxX := int(math.Ceil(cx + rx))
	minY := int(math.Floor(cy - ry))
	maxY := int(math.Ceil(cy + ry))

	for y := minY; y <= maxY; y++ {
		dy := (float64(y) - cy) / ry
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) - cx) / rx
			if dx*dx+dy*dy <= 1 {
				buf.SetBg(x, y, bg)
			}
		}
	}
}

// drawText writes a string left to right, clipping at the buffer edge
func drawText(buf *render.Buffer, x, y int, text string, color render.RGB) {
	for _, ch := range text {
		buf.Set(x, y, ch, color)
		x++
	}
}
