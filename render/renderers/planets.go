package renderers

import (
	"github.com/skyfold/orrery/render"
	"github.com/skyfold/orrery/scene"
)

// PlanetsRenderer draws each planet as a filled disc in its catalog color.
// Positions come straight from the frame updater; nothing is computed here.
// On small terminals every planet collapses to a single block cell, which
// keeps the inner planets visible instead of rounding them away.
type PlanetsRenderer struct {
	scene *scene.Scene
}

func NewPlanetsRenderer(s *scene.Scene) *PlanetsRenderer {
	return &PlanetsRenderer{scene: s}
}

func (r *PlanetsRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for i := range r.scene.Planets {
		p := &r.scene.Planets[i]
		fillDisc(buf, ctx.View, p.Pos.X, p.Pos.Y, p.Spec.Size, '█', p.Spec.Color)
	}
}
