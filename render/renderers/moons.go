package renderers

import (
	"github.com/skyfold/orrery/render"
	"github.com/skyfold/orrery/scene"
)

// MoonsRenderer draws every moon one layer beneath the planets, so a moon
// passing its parent slips behind the disc. Moon radii are sub-cell at any
// sane terminal size and claim exactly the cell under their center.
type MoonsRenderer struct {
	scene *scene.Scene
}

func NewMoonsRenderer(s *scene.Scene) *MoonsRenderer {
	return &MoonsRenderer{scene: s}
}

func (r *MoonsRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for i := range r.scene.Planets {
		for _, m := range r.scene.Planets[i].Moons {
			fillDisc(buf, ctx.View, m.Pos.X, m.Pos.Y, m.Size, '•', render.RgbMoon)
		}
	}
}
