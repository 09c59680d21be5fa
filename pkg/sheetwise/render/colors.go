package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// barFill and barStroke colour every bar of a bar chart.
var (
	barFill   = drawing.Color{R: 0, G: 188, B: 212, A: 153}
	barStroke = drawing.Color{R: 0, G: 188, B: 212, A: 255}
	textColor = drawing.Color{R: 64, G: 64, B: 64, A: 255}
)

// sliceColors returns n distinct colours spread evenly around the hue
// circle, at 70% saturation and 60% lightness.
func sliceColors(n int, alpha uint8) []drawing.Color {
	colors := make([]drawing.Color, n)
	for i := 0; i < n; i++ {
		hue := math.Mod(float64(i)*360/float64(n), 360)
		colors[i] = hsla(hue, 0.7, 0.6, alpha)
	}
	return colors
}

// hsla converts a hue in degrees and saturation/lightness in [0,1] to a
// chart colour.
func hsla(h, s, l float64, alpha uint8) drawing.Color {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return drawing.Color{R: r, G: g, B: b, A: alpha}
}
