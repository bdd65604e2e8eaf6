package dodger

import "github.com/vovakirdan/circle-dodger/internal/core"

// Bullet travels straight up from the player's muzzle.
// It is treated as a point for collisions.
type Bullet struct {
	X, Y   float64
	Speed  float64 // Upward, per second
	Active bool
}

// NewBullet creates an active bullet at (x, y).
func NewBullet(x, y, speed float64) Bullet {
	return Bullet{X: x, Y: y, Speed: speed, Active: true}
}

// Update moves the bullet up.
func (b *Bullet) Update(dt float64) {
	b.Y -= b.Speed * dt
}

// IsOffScreen reports whether the bullet has left through the top edge.
func (b Bullet) IsOffScreen() bool {
	return b.Y < 0
}

// CollidesWithCircle reports whether the bullet is inside the circle.
func (b Bullet) CollidesWithCircle(c FallingCircle) bool {
	return core.PointInCircle(b.X, b.Y, c.X, c.Y, c.Radius)
}
