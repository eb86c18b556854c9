package audio

import (
	"math"

	"github.com/skyfold/orrery/constants"
)

// Pitch maps an orbital period in frames to a chime frequency in Hz.
// Kepler flavored: frequency falls with the square root of the period, so
// Mercury rings the base pitch and the outer planets sound progressively
// deeper until the clamp floor.
func Pitch(period int) float64 {
	if period < 1 {
		return constants.ChimeMinFreq
	}
	f := constants.ChimeBaseFreq * math.Sqrt(constants.ChimeBasePeriod/float64(period))
	if f < constants.ChimeMinFreq {
		return constants.ChimeMinFreq
	}
	if f > constants.ChimeMaxFreq {
		return constants.ChimeMaxFreq
	}
	return f
}
