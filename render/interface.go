package render

// Renderer is implemented by scene elements with visual output
type Renderer interface {
	Render(ctx Context, buf *Buffer)
}
