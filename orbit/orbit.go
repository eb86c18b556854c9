package orbit

import (
	"fmt"
	"math"

	"github.com/skyfold/orrery/vmath"
)

// Params describes a closed elliptical orbit with the central body at a focus.
// Positions are a pure function of the frame index, so the orbit never drifts
// no matter how long the animation runs.
type Params struct {
	SemiMajor    float64
	Eccentricity float64
	Period       int // frames per revolution
}

// NewParams derives orbit parameters from a base orbital radius.
// radius: base orbital radius (world units)
// e: eccentricity, 0 <= e < 1
// period: frames per full revolution, >= 1
func NewParams(radius, e float64, period int) (Params, error) {
	if e < 0 || e >= 1 {
		return Params{}, fmt.Errorf("eccentricity %v outside [0, 1)", e)
	}
	if radius <= 0 {
		return Params{}, fmt.Errorf("orbital radius %v not positive", radius)
	}
	if period < 1 {
		return Params{}, fmt.Errorf("period %d below one frame", period)
	}
	return Params{
		SemiMajor:    radius / (1 - e),
		Eccentricity: e,
		Period:       period,
	}, nil
}

// Position returns the body position at the given frame.
// The radius follows the polar ellipse about the focus, then the whole
// curve is shifted by a·e along the major axis:
//
//	angle = 2π·frame/period
//	r = a(1 - e²) / (1 + e·cos(angle))
//	x = r·cos(angle) - a·e, y = r·sin(angle)
//
// frame is used directly rather than accumulated, so repeated calls with
// the same frame are bitwise identical.
func (p Params) Position(frame int) (x, y float64) {
	angle := 2 * math.Pi * float64(frame) / float64(p.Period)
	sin, cos := math.Sincos(angle)
	r := p.SemiMajor * (1 - p.Eccentricity*p.Eccentricity) / (1 + p.Eccentricity*cos)
	return r*cos - p.SemiMajor*p.Eccentricity, r * sin
}

// SemiMinor returns b = a·sqrt(1 - e²).
func (p Params) SemiMinor() float64 {
	return p.SemiMajor * math.Sqrt(1-p.Eccentricity*p.Eccentricity)
}

// Path returns an n-point polyline of the full orbit for static display.
// Points follow the centered parametric form so the curve closes exactly:
// x = a·cosθ - a·e, y = b·sinθ with θ swept over [0, 2π].
// The first point sits at perihelion (radius, 0).
func (p Params) Path(n int) []vmath.Vec2 {
	if n < 2 {
		n = 2
	}
	b := p.SemiMinor()
	shift := p.SemiMajor * p.Eccentricity
	pts := make([]vmath.Vec2, n)
	for k := range pts {
		theta := 2 * math.Pi * float64(k) / float64(n-1)
		sin, cos := math.Sincos(theta)
		pts[k] = vmath.Vec2{X: p.SemiMajor*cos - shift, Y: b * sin}
	}
	return pts
}

// MoonOffset returns the circular-orbit offset of a moon relative to its
// parent at the given frame. The caller adds the parent's already updated
// position; the offset itself never depends on where the parent is.
// period must be >= 1 (derived moon periods always are).
func MoonOffset(frame int, orbitRadius float64, period int) (dx, dy float64) {
	angle := 2 * math.Pi * float64(frame) / float64(period)
	sin, cos := math.Sincos(angle)
	return orbitRadius * cos, orbitRadius * sin
}
