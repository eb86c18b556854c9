package scene

import (
	"github.com/skyfold/orrery/constants"
	"github.com/skyfold/orrery/orbit"
	"github.com/skyfold/orrery/vmath"
)

// Advance moves the scene to the given frame. Planet, label, and moon
// positions are recomputed from closed-form kinematics; the starfield
// drifts on every StarDriftInterval-th frame and is the scene's only
// cumulative mutation.
func (s *Scene) Advance(frame int) {
	s.positionBodies(frame)
	if frame%constants.StarDriftInterval == 0 {
		s.driftStars()
	}
}

// positionBodies recomputes every movable body for the frame. Moons are
// placed strictly after their parent within the same pass.
func (s *Scene) positionBodies(frame int) {
	for i := range s.Planets {
		p := &s.Planets[i]
		x, y := p.Orbit.Position(frame)
		p.Pos = vmath.Vec2{X: x, Y: y}
		p.Label = vmath.Vec2{X: x, Y: y + p.Spec.Size + constants.LabelMargin}

		for j := range p.Moons {
			m := &p.Moons[j]
			dx, dy := orbit.MoonOffset(frame, m.OrbitRadius, m.Period)
			m.Pos = vmath.Vec2{X: x + dx, Y: y + dy}
		}
	}
}

// driftStars rotates each star about the origin. The angle falls off with
// distance, so close stars sweep visibly while far ones crawl; past the
// field radius it turns negative and the outermost stars counter-rotate.
// True rotation keeps each star's radius, so the field neither collapses
// nor escapes over arbitrarily long runs.
func (s *Scene) driftStars() {
	for i := range s.Stars {
		st := &s.Stars[i]
		d := st.Pos.Len()
		angle := constants.StarDriftRate * (constants.StarFieldExtent - d) / (d + constants.StarDriftEpsilon)
		angle = vmath.Clamp(angle, -constants.StarDriftMaxStep, constants.StarDriftMaxStep)
		st.Pos = st.Pos.Rotate(angle)
	}
}

// PerihelionCrossings returns the planets whose orbit closes exactly at
// this frame. Frame 0 is the shared starting line, not a crossing.
func (s *Scene) PerihelionCrossings(frame int) []*Planet {
	if frame == 0 {
		return nil
	}
	var crossed []*Planet
	for i := range s.Planets {
		if frame%s.Planets[i].Spec.Period == 0 {
			crossed = append(crossed, &s.Planets[i])
		}
	}
	return crossed
}
