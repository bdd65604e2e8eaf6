package dodger

import "github.com/vovakirdan/circle-dodger/internal/core"

// Player is the ship. X, Y is the top-left corner of its square hitbox.
type Player struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// NewPlayer places a player horizontally centered, offset up from the bottom edge.
func NewPlayer(size, speed, bottomOffset, width, height float64) Player {
	return Player{
		X:     width / 2,
		Y:     height - bottomOffset,
		Size:  size,
		Speed: speed,
	}
}

// Move shifts the player horizontally. dir is -1, 0 or 1.
func (p *Player) Move(dir, dt float64) {
	p.X += dir * p.Speed * dt
}

// Clamp keeps the hitbox inside the viewport.
func (p *Player) Clamp(width, height float64) {
	p.X = core.ClampF(p.X, 0, width-p.Size)
	p.Y = core.ClampF(p.Y, 0, height-p.Size)
}

// Rect returns the hitbox.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Muzzle returns where bullets appear: the nose of the ship.
func (p Player) Muzzle() (float64, float64) {
	return p.X + p.Size/2, p.Y
}
