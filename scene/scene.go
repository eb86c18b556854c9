package scene

import (
	"fmt"
	"math"

	"github.com/skyfold/orrery/constants"
	"github.com/skyfold/orrery/orbit"
	"github.com/skyfold/orrery/vmath"
)

// Star is one background star. Position mutates under parallax drift;
// size and brightness are fixed at build time.
type Star struct {
	Pos        vmath.Vec2
	Size       float64
	Brightness float64
}

// Asteroid is one static belt point
type Asteroid struct {
	Pos  vmath.Vec2
	Size float64
}

// Moon orbits its parent planet on a circle. Pos is always derived from
// the parent's current position, never persisted independently.
type Moon struct {
	Size        float64
	OrbitRadius float64
	Period      int
	Pos         vmath.Vec2
}

// Planet carries the immutable catalog row plus the mutable render state
// the frame updater owns.
type Planet struct {
	Spec  Spec
	Orbit orbit.Params
	Path  []vmath.Vec2 // static orbit curve for display
	Pos   vmath.Vec2
	Label vmath.Vec2 // label anchor, just above the disc
	Moons []Moon
}

// Sun is the static central star
type Sun struct {
	Radius float64
}

// Scene aggregates every entity. One instance is built at startup and
// passed by reference to the updater and the renderers; there is no other
// holder of mutable state.
type Scene struct {
	Sun       Sun
	Planets   []Planet
	Stars     []Star
	Asteroids []Asteroid
}

// New builds the scene from the standard catalog and starfield seed
func New() (*Scene, error) {
	return NewWithSeed(constants.StarfieldSeed)
}

// NewWithSeed builds the scene with a specific starfield seed
func NewWithSeed(seed uint64) (*Scene, error) {
	return build(Catalog(), seed)
}

// build validates every descriptor before any state exists, derives orbit
// parameters and moons, scatters the starfield and belt from the seed, and
// positions all bodies at frame 0. No drift is applied here; the first
// Advance call owns that.
func build(specs []Spec, seed uint64) (*Scene, error) {
	s := &Scene{
		Sun:     Sun{Radius: constants.SunRadius},
		Planets: make([]Planet, 0, len(specs)),
	}

	for _, sp := range specs {
		params, err := orbit.NewParams(sp.Radius, sp.Ecc, sp.Period)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sp.Name, err)
		}
		if sp.Moons < 0 {
			return nil, fmt.Errorf("%s: negative moon count %d", sp.Name, sp.Moons)
		}
		if sp.Size <= 0 {
			return nil, fmt.Errorf("%s: display size %v not positive", sp.Name, sp.Size)
		}

		p := Planet{
			Spec:  sp,
			Orbit: params,
			Path:  params.Path(constants.OrbitPathPoints),
			Moons: make([]Moon, sp.Moons),
		}
		for j := range p.Moons {
			p.Moons[j] = Moon{
				Size:        sp.Size * constants.MoonSizeFactor,
				OrbitRadius: sp.Size * constants.MoonOrbitFactor,
				Period:      constants.MoonPeriodStep * (j + 1),
			}
		}
		s.Planets = append(s.Planets, p)
	}

	rng := vmath.NewFastRand(seed)

	s.Stars = make([]Star, constants.StarCount)
	for i := range s.Stars {
		s.Stars[i] = Star{
			Pos: vmath.Vec2{
				X: rng.FloatRange(-constants.StarFieldExtent, constants.StarFieldExtent),
				Y: rng.FloatRange(-constants.StarFieldExtent, constants.StarFieldExtent),
			},
			Size:       rng.FloatRange(constants.StarSizeMin, constants.StarSizeMax),
			Brightness: rng.FloatRange(constants.StarBrightnessMin, constants.StarBrightnessMax),
		}
	}

	s.Asteroids = make([]Asteroid, constants.BeltCount)
	for i := range s.Asteroids {
		angle := rng.FloatRange(0, 2*math.Pi)
		radius := rng.FloatRange(constants.BeltInnerRadius, constants.BeltOuterRadius)
		s.Asteroids[i] = Asteroid{
			Pos:  vmath.Polar(radius, angle),
			Size: rng.FloatRange(constants.BeltSizeMin, constants.BeltSizeMax),
		}
	}

	s.positionBodies(0)
	return s, nil
}
