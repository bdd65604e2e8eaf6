// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to keep
// game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in world units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ClosestPoint returns the point inside the rectangle nearest to (x, y).
func (r Rect) ClosestPoint(x, y float64) (float64, float64) {
	return ClampF(x, r.X, r.Right()), ClampF(y, r.Y, r.Bottom())
}

// CircleIntersectsRect reports whether a circle centered at (cx, cy) overlaps r.
// The circle center is clamped into the rectangle and the squared distance to that
// closest point is compared against radius². A circle that only touches the
// rectangle (distance == radius) does not overlap.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	px, py := r.ClosestPoint(cx, cy)
	dx := cx - px
	dy := cy - py
	return dx*dx+dy*dy < radius*radius
}

// PointInCircle reports whether (px, py) lies strictly inside the circle.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy < radius*radius
}

// PointInTriangle reports whether (px, py) lies inside the triangle a-b-c.
// Works for either winding order; points on an edge count as inside.
func PointInTriangle(px, py, ax, ay, bx, by, cx, cy float64) bool {
	d1 := edgeSign(px, py, ax, ay, bx, by)
	d2 := edgeSign(px, py, bx, by, cx, cy)
	d3 := edgeSign(px, py, cx, cy, ax, ay)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(px, py, ax, ay, bx, by float64) float64 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the result is min, matching how a too-small screen pins the
// player to the left/top edge.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}
