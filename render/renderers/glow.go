package renderers

import (
	"github.com/skyfold/orrery/constants"
	"github.com/skyfold/orrery/render"
	"github.com/skyfold/orrery/scene"
)

// glowAlphas lists the halo discs faintest and widest first, so each
// brighter, tighter disc paints over the overlap and intensity rises
// toward the sun.
var glowAlphas = []float64{0.1, 0.2, 0.3}

// GlowRenderer tints cell backgrounds under the sun's halo. Only the
// background changes; star and orbit runes keep their foreground and shine
// through the glow.
type GlowRenderer struct {
	scene *scene.Scene
}

func NewGlowRenderer(s *scene.Scene) *GlowRenderer {
	return &GlowRenderer{scene: s}
}

func (r *GlowRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for _, alpha := range glowAlphas {
		radius := r.scene.Sun.Radius + (1-alpha)*constants.GlowSpread
		tint := render.RgbSun.Dim(alpha * constants.GlowDimFactor)
		fillDiscBg(buf, ctx.View, 0, 0, radius, tint)
	}
}
