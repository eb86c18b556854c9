package constants

// UI Text
const (
	// TitleText is centered on the top row
	TitleText = "Solar System Simulation"

	// StatusQuitHint trails the frame counter on the bottom row
	StatusQuitHint = "[q] quit"
)
