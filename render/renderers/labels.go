package renderers

import (
	"github.com/skyfold/orrery/render"
	"github.com/skyfold/orrery/scene"
)

// LabelsRenderer writes each planet's name centered on its label anchor.
// The anchor already sits above the disc; the frame updater moves it, so
// labels track their planets without touching orbit state here. Labels
// render above everything else and clip at the screen edge.
type LabelsRenderer struct {
	scene *scene.Scene
}

func NewLabelsRenderer(s *scene.Scene) *LabelsRenderer {
	return &LabelsRenderer{scene: s}
}

func (r *LabelsRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for i := range r.scene.Planets {
		p := &r.scene.Planets[i]
		x, y := ctx.View.WorldToCell(p.Label.X, p.Label.Y)
		drawText(buf, x-len(p.Spec.Name)/2, y, p.Spec.Name, render.RgbWhite)
	}
}
