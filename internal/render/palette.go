package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA converts a colorful.Color into an opaque color.RGBA, clamping
// out-of-gamut values.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// HexPalette parses "#rrggbb" strings into a palette. Unparseable entries
// become opaque black.
func HexPalette(hexes ...string) []color.RGBA {
	out := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			out[i] = color.RGBA{A: 255}
			continue
		}
		out[i] = RGBA(c)
	}
	return out
}

// Gradient spreads n colors across the given stops, blending in Lab space.
func Gradient(n int, stops ...colorful.Color) []color.RGBA {
	if n <= 0 || len(stops) == 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	if len(stops) == 1 || n == 1 {
		for i := range out {
			out[i] = RGBA(stops[0])
		}
		return out
	}
	segments := float64(len(stops) - 1)
	for i := range out {
		pos := float64(i) / float64(n-1) * segments
		seg := int(pos)
		if seg >= len(stops)-1 {
			seg = len(stops) - 2
		}
		out[i] = RGBA(stops[seg].BlendLab(stops[seg+1], pos-float64(seg)))
	}
	return out
}

// HueRamp returns n fully saturated colors sweeping the hue circle, with
// index 0 reserved for the background color bg.
func HueRamp(n int, bg color.RGBA) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	out[0] = bg
	for i := 1; i < n; i++ {
		hue := 360 * float64(i-1) / float64(n-1)
		out[i] = RGBA(colorful.Hsv(hue, 1, 1))
	}
	return out
}
