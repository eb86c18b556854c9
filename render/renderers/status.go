package renderers

import (
	"fmt"

	"github.com/skyfold/orrery/constants"
	"github.com/skyfold/orrery/render"
)

// statusText dims the bottom line so the chrome stays out of the scene
var statusDim = render.RgbWhite.Dim(0.6)

// StatusRenderer draws the two rows the view reserves: the title centered
// on the top line and the frame counter with the quit hint on the bottom
// line. It reads only the frame context, never the scene.
type StatusRenderer struct{}

func NewStatusRenderer() *StatusRenderer {
	return &StatusRenderer{}
}

func (r *StatusRenderer) Render(ctx render.Context, buf *render.Buffer) {
	title := constants.TitleText
	drawText(buf, (ctx.Width-len(title))/2, 0, title, render.RgbWhite)

	status := fmt.Sprintf("frame %4d / %d   %s", ctx.Frame, constants.TotalFrames, constants.StatusQuitHint)
	drawText(buf, 1, ctx.Height-1, status, statusDim)
}
