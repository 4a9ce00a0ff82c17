// pkg/render/color.go
package render

import (
	"image/color"
	"math"
)

// Paint is an RGB base with a floating point alpha in [0, 1].
type Paint struct {
	R, G, B uint8
	A       float64
}

// NRGBA converts the paint to a non-premultiplied 8-bit color.
func (p Paint) NRGBA() color.NRGBA {
	a := math.Max(0, math.Min(1, p.A))
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: uint8(math.Round(a * 255))}
}

// Palette holds the base color used for every particle, halo and line, plus the
// background the host clears the window to.
type Palette struct {
	Base       color.RGBA
	Background color.RGBA
}

// Alpha returns the palette base with the given opacity.
func (p Palette) Alpha(a float64) Paint {
	return Paint{R: p.Base.R, G: p.Base.G, B: p.Base.B, A: a}
}
