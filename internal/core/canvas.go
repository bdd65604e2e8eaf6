package core

import "math"

// Canvas is the render sink games draw onto, in world units.
// Width and Height are the current viewport and must be read every frame.
// Text is positioned by its baseline, like most immediate-mode graphics APIs.
type Canvas interface {
	Width() float64
	Height() float64
	Clear(c Color)
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	StrokeCircle(cx, cy, r, thickness float64, c Color)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, c Color)
	DrawText(text string, x, y, size float64, c Color)
	MeasureText(text string, size float64) float64
}

// World units covered by one terminal cell. Cells are about twice as tall as
// they are wide, so this keeps circles round on screen.
const (
	CellW = 10.0
	CellH = 20.0
)

// ringRune marks cells crossed by a stroked circle.
const ringRune = 'o'

// CellCanvas rasterizes Canvas calls onto a Screen.
// A cell is covered by a shape when its center lies inside the shape; shapes
// too small to cover any cell center still light the cell under their center.
type CellCanvas struct {
	screen *Screen
}

// NewCellCanvas wraps a screen.
func NewCellCanvas(s *Screen) *CellCanvas {
	return &CellCanvas{screen: s}
}

// Screen returns the underlying cell buffer.
func (c *CellCanvas) Screen() *Screen {
	return c.screen
}

// Width returns the viewport width in world units.
func (c *CellCanvas) Width() float64 {
	return float64(c.screen.Width()) * CellW
}

// Height returns the viewport height in world units.
func (c *CellCanvas) Height() float64 {
	return float64(c.screen.Height()) * CellH
}

// Clear blanks every cell onto the given background.
func (c *CellCanvas) Clear(col Color) {
	c.screen.Clear(col.Over(ColorBlack))
}

// FillRect paints every cell whose center is inside the rectangle.
func (c *CellCanvas) FillRect(x, y, w, h float64, col Color) {
	r := NewRect(x, y, w, h)
	c.fill(r, col, r.Contains)
}

// FillCircle paints every cell whose center is inside the circle.
func (c *CellCanvas) FillCircle(cx, cy, radius float64, col Color) {
	bounds := NewRect(cx-radius, cy-radius, 2*radius, 2*radius)
	c.fill(bounds, col, func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= radius*radius
	})
}

// StrokeCircle marks cells the ring passes through with a glyph, leaving their
// backgrounds alone so a filled circle underneath stays visible.
func (c *CellCanvas) StrokeCircle(cx, cy, radius, thickness float64, col Color) {
	if radius <= 0 {
		return
	}
	inner := max(radius-thickness/2, 0)
	outer := radius + thickness/2

	x0, y0, x1, y1 := c.cellSpan(NewRect(cx-outer, cy-outer, 2*outer, 2*outer))
	for row := y0; row <= y1; row++ {
		for column := x0; column <= x1; column++ {
			cell := NewRect(float64(column)*CellW, float64(row)*CellH, CellW, CellH)
			near, far := distanceRange(cx, cy, cell)
			if near <= outer && far >= inner {
				c.screen.DrawText(column, row, string(ringRune), col)
			}
		}
	}
}

// FillTriangle paints every cell whose center is inside the triangle.
func (c *CellCanvas) FillTriangle(x1, y1, x2, y2, x3, y3 float64, col Color) {
	minX := min(x1, x2, x3)
	minY := min(y1, y2, y3)
	bounds := NewRect(minX, minY, max(x1, x2, x3)-minX, max(y1, y2, y3)-minY)
	c.fill(bounds, col, func(x, y float64) bool {
		return PointInTriangle(x, y, x1, y1, x2, y2, x3, y3)
	})
}

// DrawText writes one glyph per cell regardless of size. The row is the one
// holding the vertical middle of the glyphs sitting on the baseline y.
func (c *CellCanvas) DrawText(text string, x, y, size float64, col Color) {
	row := int(math.Floor((y - size*0.35) / CellH))
	column := int(math.Floor(x / CellW))
	c.screen.DrawText(column, row, text, col)
}

// MeasureText returns the width of text in world units.
func (c *CellCanvas) MeasureText(text string, size float64) float64 {
	return float64(len([]rune(text))) * CellW
}

// fill paints cells inside bounds whose centers satisfy inside.
func (c *CellCanvas) fill(bounds Rect, col Color, inside func(x, y float64) bool) {
	painted := false
	x0, y0, x1, y1 := c.cellSpan(bounds)
	for row := y0; row <= y1; row++ {
		for column := x0; column <= x1; column++ {
			px := (float64(column) + 0.5) * CellW
			py := (float64(row) + 0.5) * CellH
			if inside(px, py) {
				c.screen.Paint(column, row, col)
				painted = true
			}
		}
	}
	if !painted && bounds.W >= 0 && bounds.H >= 0 {
		mx, my := bounds.Center()
		c.screen.Paint(int(math.Floor(mx/CellW)), int(math.Floor(my/CellH)), col)
	}
}

// cellSpan returns the inclusive range of on-screen cells overlapping r.
func (c *CellCanvas) cellSpan(r Rect) (x0, y0, x1, y1 int) {
	x0 = Clamp(int(math.Floor(r.X/CellW)), 0, c.screen.Width())
	y0 = Clamp(int(math.Floor(r.Y/CellH)), 0, c.screen.Height())
	x1 = Clamp(int(math.Floor(r.Right()/CellW)), -1, c.screen.Width()-1)
	y1 = Clamp(int(math.Floor(r.Bottom()/CellH)), -1, c.screen.Height()-1)
	return x0, y0, x1, y1
}

// distanceRange returns the nearest and farthest distance from (x, y) to r.
func distanceRange(x, y float64, r Rect) (near, far float64) {
	px, py := r.ClosestPoint(x, y)
	near = math.Hypot(x-px, y-py)
	fx := math.Max(math.Abs(x-r.X), math.Abs(x-r.Right()))
	fy := math.Max(math.Abs(y-r.Y), math.Abs(y-r.Bottom()))
	far = math.Hypot(fx, fy)
	return near, far
}
