package render

// Context provides frame state for renderers, passed by value
type Context struct {
	Frame  int
	View   View
	Width  int
	Height int
}

// NewContext builds the per-frame context from the current view
func NewContext(frame int, view View) Context {
	return Context{
		Frame:  frame,
		View:   view,
		Width:  view.Width,
		Height: view.Height,
	}
}
