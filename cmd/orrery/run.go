package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/skyfold/orrery/audio"
	"github.com/skyfold/orrery/constants"
	"github.com/skyfold/orrery/engine"
	"github.com/skyfold/orrery/render"
	"github.com/skyfold/orrery/render/renderers"
	"github.com/skyfold/orrery/scene"
)

// run builds the scene, takes over the terminal, and drives the animation
// loop until a quit key arrives. Everything that can fail does so here,
// before the first frame; the loop itself has no error paths.
func run(debugMode, noAudio bool) error {
	logFile := setupLogging(debugMode)
	if logFile != nil {
		defer logFile.Close()
	}

	// Fail fast on a bad catalog before touching the terminal
	sc, err := scene.New()
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize display: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before the stack trace lands on it
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\norrery crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()

	width, height := screen.Size()
	view := render.NewView(width, height)
	pipeline := render.NewPipeline(screen, width, height)

	type rendererDef struct {
		renderer render.Renderer
		priority render.Priority
	}
	for _, def := range []rendererDef{
		{renderers.NewStarfieldRenderer(sc), render.PriorityStarfield},
		{renderers.NewOrbitsRenderer(sc), render.PriorityOrbits},
		{renderers.NewBeltRenderer(sc), render.PriorityBelt},
		{renderers.NewGlowRenderer(sc), render.PriorityGlow},
		{renderers.NewMoonsRenderer(sc), render.PriorityMoons},
		{renderers.NewPlanetsRenderer(sc), render.PriorityPlanets},
		{renderers.NewSunRenderer(sc), render.PrioritySun},
		{renderers.NewStatusRenderer(), render.PriorityUI},
		{renderers.NewLabelsRenderer(sc), render.PriorityLabels},
	} {
		pipeline.Register(def.renderer, def.priority)
	}

	chimer := audio.NewChimer()
	if !noAudio {
		if err := chimer.Initialize(); err != nil {
			log.Printf("audio unavailable: %v (continuing without sound)", err)
		} else {
			defer chimer.Cleanup()
		}
	}

	tick := func(frame int) {
		sc.Advance(frame)
		for _, p := range sc.PerihelionCrossings(frame) {
			chimer.Chime(p.Spec.Period)
		}
		pipeline.RenderFrame(render.NewContext(frame, view))
	}

	scheduler, err := engine.NewScheduler(tick, constants.FrameInterval,
		constants.TotalFrames, constants.RepeatAnimation)
	if err != nil {
		return fmt.Errorf("configure scheduler: %w", err)
	}

	// Input pump: the only other goroutine. It forwards terminal events
	// and never touches scene or render state.
	events := make(chan tcell.Event, 64)
	quitPoll := make(chan struct{})
	go screen.ChannelEvents(events, quitPoll)
	defer close(quitPoll)

	ticker := time.NewTicker(scheduler.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !scheduler.Step() {
				return nil
			}
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if quitKey(e) {
					return nil
				}
			case *tcell.EventResize:
				w, h := e.Size()
				view = render.NewView(w, h)
				pipeline.Resize(w, h)
			}
		}
	}
}

func quitKey(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return e.Rune() == 'q' || e.Rune() == 'Q'
	}
	return false
}
