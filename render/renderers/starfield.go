package renderers

import (
	"math"

	"github.com/skyfold/orrery/constants"
	"github.com/skyfold/orrery/render"
	"github.com/skyfold/orrery/scene"
)

// StarfieldRenderer draws the background scatter: glyph by star size,
// white dimmed by per-star brightness. Stars scatter wider than the world
// extent and drift; anything outside the extent is clipped, matching the
// fixed display bounds.
type StarfieldRenderer struct {
	scene *scene.Scene
}

func NewStarfieldRenderer(s *scene.Scene) *StarfieldRenderer {
	return &StarfieldRenderer{scene: s}
}

func (r *StarfieldRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for i := range r.scene.Stars {
		st := &r.scene.Stars[i]
		if math.Abs(st.Pos.X) > constants.WorldExtent || math.Abs(st.Pos.Y) > constants.WorldExtent {
			continue
		}
		x, y := ctx.View.WorldToCell(st.Pos.X, st.Pos.Y)
		buf.Set(x, y, starGlyph(st.Size), render.RgbWhite.Dim(st.Brightness))
	}
}

// starGlyph buckets scatter sizes into three dot weights
func starGlyph(size float64) rune {
	switch {
	case size < 0.7:
		return '.'
	case size < 1.4:
		return '+'
	default:
		return '*'
	}
}
