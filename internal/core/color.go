package core

import "fmt"

// Color is a straight (non-premultiplied) RGBA color.
// Games draw with these values; each platform converts them to whatever its
// backend understands (truecolor hex for the terminal, color.RGBA for Ebiten).
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Named colors used by the games.
var (
	ColorBlank      = Color{}
	ColorBlack      = RGB(0, 0, 0)
	ColorWhite      = RGB(255, 255, 255)
	ColorRed        = RGB(230, 41, 55)
	ColorBlue       = RGB(0, 121, 241)
	ColorGreen      = RGB(0, 228, 48)
	ColorYellow     = RGB(253, 249, 0)
	ColorPurple     = RGB(200, 122, 255)
	ColorOrange     = RGB(255, 161, 0)
	ColorPink       = RGB(255, 109, 194)
	ColorLightGray  = RGB(200, 200, 200)
	ColorDarkGray   = RGB(80, 80, 80)
	ColorBeige      = RGB(211, 176, 131)
	ColorBrown      = RGB(127, 106, 79)
	ColorMaroon     = RGB(190, 33, 55)
	ColorViolet     = RGB(135, 60, 190)
	ColorStatusGray = RGB(128, 128, 128)
)

// WithAlpha returns a copy of c with the given alpha in [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = uint8(ClampF(a, 0, 1)*255 + 0.5)
	return c
}

// Opaque reports whether the color fully covers what is beneath it.
func (c Color) Opaque() bool {
	return c.A == 255
}

// Hex formats the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Over composites c on top of dst using c's alpha.
// The result is always opaque.
func (c Color) Over(dst Color) Color {
	if c.A == 255 {
		return c
	}
	if c.A == 0 {
		return RGB(dst.R, dst.G, dst.B)
	}
	a := float64(c.A) / 255
	mix := func(src, d uint8) uint8 {
		return uint8(float64(src)*a + float64(d)*(1-a) + 0.5)
	}
	return RGB(mix(c.R, dst.R), mix(c.G, dst.G), mix(c.B, dst.B))
}

// Luma returns the perceived brightness of the color in [0, 1].
func (c Color) Luma() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// ColorFromFloats builds an opaque color from components in [0, 1].
func ColorFromFloats(r, g, b float64) Color {
	conv := func(v float64) uint8 {
		return uint8(ClampF(v, 0, 1)*255 + 0.5)
	}
	return RGB(conv(r), conv(g), conv(b))
}
