package render

// Priority determines render order. Lower values render first
type Priority int

// Stacking follows the scene: background scatter lowest, discs above their
// glow, labels on top. Gaps leave room between layers.
const (
	PriorityStarfield Priority = 1
	PriorityOrbits    Priority = 3
	PriorityBelt      Priority = 5
	PriorityGlow      Priority = 10
	PriorityMoons     Priority = 14
	PriorityPlanets   Priority = 15
	PrioritySun       Priority = 20
	PriorityUI        Priority = 25
	PriorityLabels    Priority = 30
)
