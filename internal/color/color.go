// Package color implements the linear RGB radiance values carried through
// the integrator, distinct from image/color's gamma-encoded display colors.
package color

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a linear RGB triple, unbounded on the high side until 8-bit
// quantization at output time. Mirrors original_source/src/color.rs.
type Color struct {
	R, G, B float64
}

// New constructs a Color.
func New(r, g, b float64) Color { return Color{r, g, b} }

func Black() Color { return Color{0, 0, 0} }
func White() Color { return Color{1, 1, 1} }
func Red() Color   { return Color{1, 0, 0} }
func Green() Color { return Color{0, 1, 0} }
func Blue() Color  { return Color{0, 0, 1} }

// Add returns the component-wise sum.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul returns the component-wise (Schur) product, used when attenuating a
// traced color by a material's albedo.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Div divides every channel by s.
func (c Color) Div(s float64) Color {
	return Color{c.R / s, c.G / s, c.B / s}
}

// Luminance is the perceptual weighting used by Russian-roulette survival
// probability in the integrator.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// ToU8 quantizes a single linear channel to [0,255] by clamp(c*255, 0, 255),
// matching spec.md's output contract exactly (no gamma curve).
func ToU8(c float64) uint8 {
	v := c * 255
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// ToNRGBA converts to a stdlib image/color.NRGBA for PNG encoding.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{R: ToU8(c.R), G: ToU8(c.G), B: ToU8(c.B), A: 255}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", ToU8(c.R), ToU8(c.G), ToU8(c.B))
}

// Min is the smallest representable non-black color, matching the
// original's Color::min() epsilon used to avoid division by exact zero.
func Min() Color { return Color{1. / 255., 1. / 255., 1. / 255.} }

// Clamp01 restricts every channel to [0,1], used by tone-mapped outputs
// such as the sky shader before further compositing.
func (c Color) Clamp01() Color {
	clamp := func(v float64) float64 { return math.Max(0, math.Min(1, v)) }
	return Color{clamp(c.R), clamp(c.G), clamp(c.B)}
}
