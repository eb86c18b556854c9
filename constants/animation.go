package constants

import "time"

// Animation Loop Timing
const (
	// FrameInterval is the nominal tick rate of the animation loop
	FrameInterval = 20 * time.Millisecond

	// TotalFrames is one full animation cycle before the frame counter wraps
	TotalFrames = 1000

	// RepeatAnimation restarts from frame 0 after the final frame
	RepeatAnimation = true

	// StarDriftInterval applies starfield parallax every Nth frame
	StarDriftInterval = 5
)
