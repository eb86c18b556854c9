package renderers

import (
	"github.com/skyfold/orrery/render"
	"github.com/skyfold/orrery/scene"
)

// SunRenderer draws the central star as a solid yellow disc above its glow
type SunRenderer struct {
	scene *scene.Scene
}

func NewSunRenderer(s *scene.Scene) *SunRenderer {
	return &SunRenderer{scene: s}
}

func (r *SunRenderer) Render(ctx render.Context, buf *render.Buffer) {
	fillDisc(buf, ctx.View, 0, 0, r.scene.Sun.Radius, '█', render.RgbSun)
}
