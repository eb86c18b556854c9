package scene

import "github.com/skyfold/orrery/render"

// Spec is one row of the planet table: the static description a Planet is
// built from. Radius and Size are in world units, Period in frames.
type Spec struct {
	Name   string
	Radius float64
	Size   float64
	Color  render.RGB
	Period int
	Ecc    float64
	Moons  int
}

// Catalog returns the planet table, innermost first.
func Catalog() []Spec {
	return []Spec{
		{"Mercury", 1.5, 0.08, render.RgbDarkGoldenrod, 88, 0.2, 0},
		{"Venus", 2.2, 0.12, render.RgbBisque, 225, 0.01, 0},
		{"Earth", 3.0, 0.13, render.RgbDodgerBlue, 365, 0.02, 1},
		{"Mars", 3.8, 0.11, render.RgbTomato, 687, 0.09, 2},
		{"Jupiter", 5.5, 0.25, render.RgbBurlywood, 4333, 0.05, 4},
		{"Saturn", 7.0, 0.22, render.RgbNavajoWhite, 10759, 0.06, 3},
		{"Uranus", 8.2, 0.18, render.RgbLightCyan, 30687, 0.05, 2},
		{"Neptune", 9.5, 0.17, render.RgbRoyalBlue, 60190, 0.01, 1},
	}
}
