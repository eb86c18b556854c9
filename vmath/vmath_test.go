package vmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		expected   float64
	}{
		{"below", -3, -1, 1, -1},
		{"inside", 0.5, -1, 1, 0.5},
		{"above", 7, -1, 1, 1},
		{"at bound", 1, -1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.expected)
			}
		})
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 1000; i++ {
		if va, vb := a.Next(), b.Next(); va != vb {
			t.Fatalf("sequence diverged at step %d: %d != %d", i, va, vb)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Fatal("zero seed must not produce the all-zero fixed point")
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v outside [0, 1)", v)
		}
	}
}

func TestFastRandFloatRange(t *testing.T) {
	r := NewFastRand(7)
	lo, hi := -12.0, 12.0
	var min, max = hi, lo
	for i := 0; i < 10000; i++ {
		v := r.FloatRange(lo, hi)
		if v < lo || v >= hi {
			t.Fatalf("FloatRange(%v, %v) = %v out of range", lo, hi, v)
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	// 10k draws should cover most of the interval
	if min > lo+1 || max < hi-1 {
		t.Errorf("draws poorly spread: min=%v max=%v", min, max)
	}
}

func TestVec2Rotate(t *testing.T) {
	const eps = 1e-12

	v := Vec2{X: 1, Y: 0}
	got := v.Rotate(math.Pi / 2)
	if math.Abs(got.X) > eps || math.Abs(got.Y-1) > eps {
		t.Errorf("quarter turn of (1,0) = %+v, want (0,1)", got)
	}

	// Rotation must preserve length over many accumulated applications.
	v = Vec2{X: 3, Y: 4}
	want := v.Len()
	for i := 0; i < 100000; i++ {
		v = v.Rotate(0.01)
	}
	if math.Abs(v.Len()-want) > 1e-6 {
		t.Errorf("length drifted from %v to %v after repeated rotation", want, v.Len())
	}
}

func TestPolar(t *testing.T) {
	const eps = 1e-12
	v := Polar(2, math.Pi)
	if math.Abs(v.X+2) > eps || math.Abs(v.Y) > eps {
		t.Errorf("Polar(2, pi) = %+v, want (-2,0)", v)
	}
	if d := Polar(5, 1.234).Len(); math.Abs(d-5) > eps {
		t.Errorf("Polar radius not preserved: %v", d)
	}
}
