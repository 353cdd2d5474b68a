package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// pointerColor tints the dial needle by its angle, one hue per degree.
func pointerColor(degrees float64) color.RGBA {
	h := math.Mod(degrees, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, 0.6, 0.95).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// formatDegrees formats an angle as the sample label, e.g. "-12.5 deg"
func formatDegrees(d float64) string {
	if math.Abs(d) < 0.05 {
		d = 0
	}
	return fmt.Sprintf("%.1f deg", d)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
