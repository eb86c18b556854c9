package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/skyfold/orrery/constants"
)

const sampleRate = beep.SampleRate(constants.ChimeSampleRate)

// Chimer plays a short sine chime whenever a planet completes an orbit.
// The speaker runs its own mixer goroutine; the Chimer only hands it
// immutable sample streams, so no scene state ever crosses that boundary.
type Chimer struct {
	mu          sync.Mutex
	initialized bool
}

// NewChimer creates a silent chimer; Initialize opens the audio device.
func NewChimer() *Chimer {
	return &Chimer{}
}

// Initialize sets up the speaker. An error here means no audio device is
// available; the caller continues without sound.
func (c *Chimer) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constants.ChimeBufferDuration)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Cleanup silences any chime still sounding. beep has no speaker Close;
// clearing playback is all the shutdown there is.
func (c *Chimer) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	c.initialized = false
}

// Chime plays one tone for an orbit of the given period in frames.
// Safe to call before Initialize or after a failed one; it just does
// nothing.
func (c *Chimer) Chime(period int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	sine, err := generators.SineTone(sampleRate, Pitch(period))
	if err != nil {
		return
	}
	tone := beep.Take(sampleRate.N(constants.ChimeDuration), sine)
	speaker.Play(&effects.Gain{Streamer: tone, Gain: constants.ChimeGain})
}
