package audio

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/skyfold/orrery/constants"
	"github.com/skyfold/orrery/scene"
)

func TestPitchMercuryIsBase(t *testing.T) {
	if f := Pitch(88); !scalar.EqualWithinAbs(f, 880, 1e-9) {
		t.Errorf("Pitch(88) = %v, want 880", f)
	}
}

func TestPitchMonotoneDecreasingOverCatalog(t *testing.T) {
	prev := Pitch(scene.Catalog()[0].Period)
	for _, sp := range scene.Catalog()[1:] {
		f := Pitch(sp.Period)
		if f > prev {
			t.Errorf("%s: pitch %v rose above previous %v", sp.Name, f, prev)
		}
		prev = f
	}
}

func TestPitchClamps(t *testing.T) {
	tests := []struct {
		name   string
		period int
		want   float64
	}{
		{"very long period hits floor", 60190, constants.ChimeMinFreq},
		{"shorter than base hits ceiling", 10, constants.ChimeMaxFreq},
		{"degenerate period", 0, constants.ChimeMinFreq},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if f := Pitch(tt.period); f != tt.want {
				t.Errorf("Pitch(%d) = %v, want %v", tt.period, f, tt.want)
			}
		})
	}
}

func TestChimerSilentBeforeInitialize(t *testing.T) {
	c := NewChimer()
	// No device opened; both must be safe no-ops.
	c.Chime(88)
	c.Cleanup()
}
