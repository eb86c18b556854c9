package scene

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func starPositions(s *Scene) [][2]float64 {
	out := make([][2]float64, len(s.Stars))
	for i, st := range s.Stars {
		out[i] = [2]float64{st.Pos.X, st.Pos.Y}
	}
	return out
}

func TestDriftAppliesOnIntervalFramesOnly(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}

	before := starPositions(s)
	s.Advance(1)
	for i, st := range s.Stars {
		if st.Pos.X != before[i][0] || st.Pos.Y != before[i][1] {
			t.Fatalf("star %d moved on a non-drift frame", i)
		}
	}

	s.Advance(5)
	moved := 0
	for i, st := range s.Stars {
		if st.Pos.X != before[i][0] || st.Pos.Y != before[i][1] {
			moved++
		}
	}
	if moved == 0 {
		t.Error("no star moved on a drift frame")
	}
}

func TestDriftAppliesAtFrameZero(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}

	// Build leaves the scatter un-drifted; the first tick of every cycle
	// lands on frame 0 and applies one drift.
	before := starPositions(s)
	s.Advance(0)
	moved := 0
	for i, st := range s.Stars {
		if st.Pos.X != before[i][0] || st.Pos.Y != before[i][1] {
			moved++
		}
	}
	if moved == 0 {
		t.Error("frame 0 applied no drift")
	}
}

func TestDriftIsCumulative(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}

	s.Advance(5)
	after1 := starPositions(s)
	s.Advance(5)
	identical := true
	for i, st := range s.Stars {
		if st.Pos.X != after1[i][0] || st.Pos.Y != after1[i][1] {
			identical = false
			break
		}
	}
	if identical {
		t.Error("repeated drift frames did not accumulate")
	}
}

func TestDriftPreservesRadii(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}

	initial := make([]float64, len(s.Stars))
	for i, st := range s.Stars {
		initial[i] = st.Pos.Len()
	}

	for i := 0; i < 10000; i++ {
		s.driftStars()
	}

	for i, st := range s.Stars {
		d := st.Pos.Len()
		if !scalar.EqualWithinAbs(d, initial[i], 1e-9) {
			t.Errorf("star %d radius drifted from %v to %v", i, initial[i], d)
		}
	}
}

func TestPerihelionCrossings(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		frame int
		want  []string
	}{
		{"frame zero is not a crossing", 0, nil},
		{"off-cycle frame", 7, nil},
		{"first mercury year", 88, []string{"Mercury"}},
		{"second mercury year", 176, []string{"Mercury"}},
		{"venus year", 225, []string{"Venus"}},
		{"earth year", 365, []string{"Earth"}},
		{"mars year", 687, []string{"Mars"}},
		{"mercury and venus align", 19800, []string{"Mercury", "Venus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crossed := s.PerihelionCrossings(tt.frame)
			if len(crossed) != len(tt.want) {
				t.Fatalf("crossings = %d, want %d", len(crossed), len(tt.want))
			}
			for i, p := range crossed {
				if p.Spec.Name != tt.want[i] {
					t.Errorf("crossing %d = %s, want %s", i, p.Spec.Name, tt.want[i])
				}
			}
		})
	}
}
