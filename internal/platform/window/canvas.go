// Package window runs a game in a desktop window with Ebitengine.
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/circle-dodger/internal/core"
)

// baseFontSize is the pixel height basicfont.Face7x13 is designed for.
const baseFontSize = 13

var (
	face = text.NewGoXFace(basicfont.Face7x13)

	// whiteImage is the source texture for flat-colored triangles.
	whiteImage = func() *ebiten.Image {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}()
)

// Canvas draws onto an Ebitengine image in pixels.
type Canvas struct {
	dst *ebiten.Image
}

// NewCanvas wraps the frame's screen image.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

func (c *Canvas) Width() float64  { return float64(c.dst.Bounds().Dx()) }
func (c *Canvas) Height() float64 { return float64(c.dst.Bounds().Dy()) }

func (c *Canvas) Clear(col core.Color) {
	c.dst.Fill(nrgba(col))
}

func (c *Canvas) FillRect(x, y, w, h float64, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), nrgba(col), false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), nrgba(col), true)
}

func (c *Canvas) StrokeCircle(cx, cy, r, thickness float64, col core.Color) {
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(thickness), nrgba(col), true)
}

func (c *Canvas) FillTriangle(x1, y1, x2, y2, x3, y3 float64, col core.Color) {
	var path vector.Path
	path.MoveTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.LineTo(float32(x3), float32(y3))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := vertexColor(col)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(vs, is, whiteImage, op)
}

// DrawText draws text with its baseline at y, scaled from the bitmap font.
func (c *Canvas) DrawText(s string, x, y, size float64, col core.Color) {
	scale := size / baseFontSize
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-face.Metrics().HAscent*scale)
	op.ColorScale.ScaleWithColor(nrgba(col))
	text.Draw(c.dst, s, face, op)
}

func (c *Canvas) MeasureText(s string, size float64) float64 {
	return text.Advance(s, face) * size / baseFontSize
}

// nrgba converts a core color to a straight-alpha image color.
func nrgba(c core.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// vertexColor returns the premultiplied vertex color scale for c.
func vertexColor(c core.Color) (r, g, b, a float32) {
	a = float32(c.A) / 255
	return float32(c.R) / 255 * a, float32(c.G) / 255 * a, float32(c.B) / 255 * a, a
}

// Ensure Canvas implements core.Canvas
var _ core.Canvas = (*Canvas)(nil)
