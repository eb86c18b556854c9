package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Pipeline coordinates the render pass
type Pipeline struct {
	screen    tcell.Screen
	buffer    *Buffer
	renderers []rendererEntry
	regCount  int
}

// NewPipeline creates a pipeline drawing to the given screen and dimensions
func NewPipeline(screen tcell.Screen, width, height int) *Pipeline {
	return &Pipeline{
		screen:    screen,
		buffer:    NewBuffer(width, height),
		renderers: make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (p *Pipeline) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    p.regCount,
	}
	p.regCount++

	// Insertion sort: find position and insert
	pos := len(p.renderers)
	for i, e := range p.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	p.renderers = append(p.renderers, rendererEntry{})
	copy(p.renderers[pos+1:], p.renderers[pos:])
	p.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (p *Pipeline) Resize(width, height int) {
	p.buffer.Resize(width, height)
	p.screen.Sync()
}

// RenderFrame executes the render pass: clear, render all in order, flush
func (p *Pipeline) RenderFrame(ctx Context) {
	p.buffer.Clear()
	for _, entry := range p.renderers {
		entry.renderer.Render(ctx, p.buffer)
	}
	p.buffer.Flush(p.screen)
}
