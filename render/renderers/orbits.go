package renderers

import (
	"github.com/skyfold/orrery/render"
	"github.com/skyfold/orrery/scene"
)

// orbitDot is the faint white of the static orbit curves
var orbitDot = render.RgbWhite.Dim(0.3)

// OrbitsRenderer draws each planet's orbit curve from its build-time
// polyline. The curves never move; only the view can change them.
type OrbitsRenderer struct {
	scene *scene.Scene
}

func NewOrbitsRenderer(s *scene.Scene) *OrbitsRenderer {
	return &OrbitsRenderer{scene: s}
}

func (r *OrbitsRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for i := range r.scene.Planets {
		for _, pt := range r.scene.Planets[i].Path {
			x, y := ctx.View.WorldToCell(pt.X, pt.Y)
			buf.Set(x, y, '·', orbitDot)
		}
	}
}
