package constants

import "time"

// Chime Synthesis
const (
	// ChimeSampleRate is the speaker sample rate in Hz
	ChimeSampleRate = 44100

	// ChimeBufferDuration determines speaker latency
	ChimeBufferDuration = 100 * time.Millisecond

	// ChimeDuration is the length of one perihelion chime
	ChimeDuration = 150 * time.Millisecond

	// ChimeBaseFreq is the pitch assigned to the fastest catalog orbit
	ChimeBaseFreq = 880.0

	// ChimeBasePeriod is the orbital period that sounds at ChimeBaseFreq
	ChimeBasePeriod = 88.0

	// Chime pitch clamp range in Hz
	ChimeMinFreq = 110.0
	ChimeMaxFreq = 880.0

	// ChimeGain attenuates chimes below full scale (beep gain, -1 mutes)
	ChimeGain = -0.5
)
