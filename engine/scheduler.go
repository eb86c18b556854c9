package engine

import (
	"fmt"
	"time"
)

// TickFunc is invoked once per tick with the current frame index
type TickFunc func(frame int)

// Scheduler owns the frame counter and its wrap/termination semantics,
// nothing else. The host supplies actual time: a ticker loop in the binary,
// direct Step calls in a test harness. That split keeps the update logic
// independent of any particular event loop.
type Scheduler struct {
	tick        TickFunc
	interval    time.Duration
	totalFrames int
	repeat      bool

	frame    int
	finished bool
}

// NewScheduler validates the configuration and returns a scheduler parked
// at frame 0.
func NewScheduler(tick TickFunc, interval time.Duration, totalFrames int, repeat bool) (*Scheduler, error) {
	if tick == nil {
		return nil, fmt.Errorf("nil tick callback")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("tick interval %v not positive", interval)
	}
	if totalFrames < 1 {
		return nil, fmt.Errorf("total frames %d below 1", totalFrames)
	}
	return &Scheduler{
		tick:        tick,
		interval:    interval,
		totalFrames: totalFrames,
		repeat:      repeat,
	}, nil
}

// Step delivers one tick and reports whether the scheduler expects
// another. With repeat set, the frame wraps to 0 after the final frame and
// Step never reports false; without it, the step that delivers the final
// frame reports false and later calls deliver nothing.
func (s *Scheduler) Step() bool {
	if s.finished {
		return false
	}
	s.tick(s.frame)
	s.frame++
	if s.frame >= s.totalFrames {
		if s.repeat {
			s.frame = 0
		} else {
			s.finished = true
			return false
		}
	}
	return true
}

// Frame returns the frame index the next Step will deliver
func (s *Scheduler) Frame() int {
	return s.frame
}

// Interval returns the nominal tick interval for the host ticker
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Reset rewinds to frame 0 and clears the finished state
func (s *Scheduler) Reset() {
	s.frame = 0
	s.finished = false
}
