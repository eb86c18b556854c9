package constants

// World Geometry
const (
	// WorldExtent is the half-width of the visible world in world units;
	// the view fits x, y in [-WorldExtent, WorldExtent] to the terminal
	WorldExtent = 11.0

	// OrbitPathPoints is the polyline resolution of each orbit curve
	OrbitPathPoints = 300
)

// Starfield
const (
	// StarCount is the number of background stars
	StarCount = 200

	// StarfieldSeed makes the scatter reproducible across runs
	StarfieldSeed = 42

	// StarFieldExtent bounds the initial scatter ([-extent, extent]²) and
	// is the reference radius of the parallax drift falloff
	StarFieldExtent = 12.0

	StarSizeMin       = 0.1
	StarSizeMax       = 2.0
	StarBrightnessMin = 0.1
	StarBrightnessMax = 1.0

	// StarDriftRate scales the parallax rotation per application
	StarDriftRate = 0.001

	// StarDriftEpsilon keeps the drift angle finite near the origin
	StarDriftEpsilon = 0.1

	// StarDriftMaxStep caps the per-application rotation in radians so
	// near-center stars cannot jump across the scene
	StarDriftMaxStep = 0.15
)

// Asteroid Belt
const (
	// BeltCount is the number of belt points scattered between Mars and Jupiter
	BeltCount = 100

	BeltInnerRadius = 4.2
	BeltOuterRadius = 5.0
	BeltSizeMin     = 0.02
	BeltSizeMax     = 0.05

	// BeltBrightness dims belt points toward the background
	BeltBrightness = 0.7
)

// Sun
const (
	// SunRadius is the display radius of the central star
	SunRadius = 0.4

	// GlowSpread positions each glow ring at SunRadius + (1-alpha)·GlowSpread
	GlowSpread = 0.5

	// GlowDimFactor scales each ring's alpha before blending
	GlowDimFactor = 0.7
)

// Moons
const (
	// MoonSizeFactor derives a moon's display radius from its parent's size
	MoonSizeFactor = 0.15

	// MoonOrbitFactor derives a moon's orbit radius from its parent's size
	MoonOrbitFactor = 2.5

	// MoonPeriodStep is the per-index moon period increment in frames;
	// moon j orbits in MoonPeriodStep·(j+1) frames
	MoonPeriodStep = 20
)

// Labels
const (
	// LabelMargin lifts the name label above the planet disc
	LabelMargin = 0.1
)
