package tui

import "github.com/balkashynov/wishmaker/internal/color"

// Color constants for the wishmaker TUI theme
const (
	// Card
	ColorCardBackground = "#1B1530" // Dark purple
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorPlaceholder   = "#6D7383"

	// Accent Colors
	ColorAccentMain   = "#7C3AED"
	ColorAccentBright = "#A78BFA"
	ColorDescription  = "#FF5733" // Description line, the original tagline color

	// Channel fills for the sliders
	ColorRedFill   = "#EF4444"
	ColorGreenFill = "#22C55E"
	ColorBlueFill  = "#3B82F6"

	// State Colors
	ColorError = "#EF4444"

	// Text drawn directly on the picked background
	ColorOnLight = "#111111"
	ColorOnDark  = "#F5F5F5"
)

// channelFill returns the slider fill color for a channel
func channelFill(ch color.Channel) string {
	switch ch {
	case color.Red:
		return ColorRedFill
	case color.Green:
		return ColorGreenFill
	default:
		return ColorBlueFill
	}
}

// contrastText picks readable text for the given background
func contrastText(bg color.Color) string {
	if bg.IsLight() {
		return ColorOnLight
	}
	return ColorOnDark
}
