// Package styles defines the paints used to draw blocks.
package styles

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Style holds the outline, highlight and debug-overlay paints shared by all
// blocks in a tree. Block fill colours come from the model.
type Style struct {
	Outline        colorful.Color
	OutlineWidth   float64
	Highlight      colorful.Color
	HighlightWidth float64

	// RenderCenters draws a dot at every published connector position.
	RenderCenters bool
	CenterRadius  float64
	Connected     colorful.Color
	Open          colorful.Color
}

// Default returns black 1px outlines with a 5px yellow highlight.
func Default() Style {
	return Style{
		Outline:        colorful.Color{R: 0, G: 0, B: 0},
		OutlineWidth:   1,
		Highlight:      colorful.Color{R: 1, G: 1, B: 0},
		HighlightWidth: 5,
		CenterRadius:   10,
		Connected:      colorful.Color{R: 0, G: 1, B: 0},
		Open:           colorful.Color{R: 0, G: 1, B: 1},
	}
}

// CenterColor returns the overlay colour for a connector.
func (s Style) CenterColor(connected bool) colorful.Color {
	if connected {
		return s.Connected
	}
	return s.Open
}
