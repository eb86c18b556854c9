package vmath

// Scene geometry runs on float64 world units; fixed point buys nothing at
// eight planets and two hundred stars.

// CellAspect is the height:width ratio of a terminal character cell.
// World-space circles need their X extent doubled to stay circular on screen.
const CellAspect = 2.0

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 generator. Unlike math/rand it is guaranteed to
// produce the same sequence for the same seed on every platform and Go
// release, which the seeded starfield layout depends on.
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; a zero seed is replaced with 1 because
// xorshift has a fixed point at zero.
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniform value in [0, 1) using the top 53 bits.
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// FloatRange returns a uniform value in [lo, hi).
func (r *FastRand) FloatRange(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
