package render

// Scene palette. Planet entries keep the web color names the catalog uses.
var (
	RgbBackground = RGB{0, 0, 0}       // Black space
	RgbWhite      = RGB{255, 255, 255} // Stars, orbit curves, labels

	RgbSun     = RGB{255, 255, 0} // Yellow
	RgbGlowHot = RGB{255, 0, 0}   // Red end of the sun glow gradient

	RgbMoon = RGB{211, 211, 211} // Light gray
	RgbBelt = RGB{128, 128, 128} // Gray

	RgbDarkGoldenrod = RGB{184, 134, 11}
	RgbBisque        = RGB{255, 228, 196}
	RgbDodgerBlue    = RGB{30, 144, 255}
	RgbTomato        = RGB{255, 99, 71}
	RgbBurlywood     = RGB{222, 184, 135}
	RgbNavajoWhite   = RGB{255, 222, 173}
	RgbLightCyan     = RGB{224, 255, 255}
	RgbRoyalBlue     = RGB{65, 105, 225}
)
