package renderers

import (
	"github.com/skyfold/orrery/constants"
	"github.com/skyfold/orrery/render"
	"github.com/skyfold/orrery/scene"
)

// beltSpeck is the dim gray of the asteroid scatter
var beltSpeck = render.RgbBelt.Dim(constants.BeltBrightness)

// BeltRenderer draws the asteroid belt between Mars and Jupiter. The belt
// is scattered once at build time and never mutated, so this is a pure
// read of static state.
type BeltRenderer struct {
	scene *scene.Scene
}

func NewBeltRenderer(s *scene.Scene) *BeltRenderer {
	return &BeltRenderer{scene: s}
}

func (r *BeltRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for i := range r.scene.Asteroids {
		a := &r.scene.Asteroids[i]
		x, y := ctx.View.WorldToCell(a.Pos.X, a.Pos.Y)
		buf.Set(x, y, '.', beltSpeck)
	}
}
