package render

import (
	"math"

	"github.com/skyfold/orrery/constants"
	"github.com/skyfold/orrery/vmath"
)

// View maps world coordinates to terminal cells. World y grows up, cell y
// grows down. Terminal cells are roughly twice as tall as wide, so the
// horizontal scale carries the aspect correction that keeps circles round.
type View struct {
	Width  int
	Height int

	scaleX  float64 // cells per world unit, horizontal
	scaleY  float64 // cells per world unit, vertical
	centerX float64
	centerY float64
}

// NewView fits the world extent into the terminal, reserving the top row
// for the title and the bottom row for status.
func NewView(width, height int) View {
	const top, bottom = 1, 1
	rows := height - top - bottom
	if rows < 1 {
		rows = 1
	}
	cols := width
	if cols < 1 {
		cols = 1
	}

	// Fit both axes so the whole scene stays visible on narrow terminals.
	// Fencepost spans: the extreme world points land exactly on the first
	// and last usable cells instead of rounding past them.
	scaleY := float64(rows-1) / (2 * constants.WorldExtent)
	if byWidth := float64(cols-1) / (2 * constants.WorldExtent * vmath.CellAspect); byWidth < scaleY {
		scaleY = byWidth
	}

	return View{
		Width:   width,
		Height:  height,
		scaleX:  scaleY * vmath.CellAspect,
		scaleY:  scaleY,
		centerX: float64(width-1) / 2,
		centerY: float64(top) + float64(rows-1)/2,
	}
}

// WorldToCell returns the nearest cell for a world position
func (v View) WorldToCell(wx, wy float64) (int, int) {
	cx, cy := v.WorldToCellF(wx, wy)
	return int(math.Round(cx)), int(math.Round(cy))
}

// WorldToCellF returns the fractional cell position, used by disc fills
func (v View) WorldToCellF(wx, wy float64) (float64, float64) {
	return v.centerX + wx*v.scaleX, v.centerY - wy*v.scaleY
}

// RadiusToCells converts a world radius to per-axis cell spans
func (v View) RadiusToCells(r float64) (rx, ry float64) {
	return r * v.scaleX, r * v.scaleY
}

// CellVisible reports whether the cell lies inside the terminal
func (v View) CellVisible(x, y int) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height
}
