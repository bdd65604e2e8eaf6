package dodger

import (
	"github.com/vovakirdan/circle-dodger/internal/config"
	"github.com/vovakirdan/circle-dodger/internal/core"
)

// CircleType is the closed set of enemy kinds.
type CircleType int

const (
	CircleNormal CircleType = iota
	CircleFast
	CircleBig
	circleTypeCount // Sentinel for counting types
)

// String returns the name of the circle type.
func (t CircleType) String() string {
	switch t {
	case CircleNormal:
		return "normal"
	case CircleFast:
		return "fast"
	case CircleBig:
		return "big"
	default:
		return "?"
	}
}

// CircleSpec is the per-type data every circle of that type is created from.
type CircleSpec struct {
	Radius   float64
	MinSpeed float64
	MaxSpeed float64
	Health   int
	Points   int
	Weight   int
}

// CircleTable maps each CircleType to its spec.
type CircleTable [circleTypeCount]CircleSpec

// NewCircleTable builds the table from configuration.
func NewCircleTable(cfg config.CirclesConfig) CircleTable {
	row := func(c config.CircleTypeConfig) CircleSpec {
		return CircleSpec{
			Radius:   c.Radius,
			MinSpeed: c.MinSpeed,
			MaxSpeed: c.MaxSpeed,
			Health:   c.Health,
			Points:   c.Points,
			Weight:   c.Weight,
		}
	}
	return CircleTable{
		CircleNormal: row(cfg.Normal),
		CircleFast:   row(cfg.Fast),
		CircleBig:    row(cfg.Big),
	}
}

// Spec returns the row for a type.
func (t CircleTable) Spec(ct CircleType) CircleSpec {
	return t[ct]
}

// Only returns a copy of the table where ct is the only type that spawns.
func (t CircleTable) Only(ct CircleType) CircleTable {
	for i := range t {
		if CircleType(i) == ct {
			t[i].Weight = max(t[i].Weight, 1)
		} else {
			t[i].Weight = 0
		}
	}
	return t
}

// Pick draws a type with probability proportional to its weight.
func (t CircleTable) Pick(rng RNG) CircleType {
	total := 0
	for _, s := range t {
		total += max(s.Weight, 0)
	}
	if total <= 0 {
		return CircleNormal
	}

	roll := rng.Intn(total)
	for i, s := range t {
		w := max(s.Weight, 0)
		if roll < w {
			return CircleType(i)
		}
		roll -= w
	}
	return CircleNormal
}

// Palette is the set of colors circles are drawn in, picked uniformly.
// Purple appears twice.
var Palette = []core.Color{
	core.ColorRed,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorPurple,
	core.ColorOrange,
	core.ColorPink,
	core.ColorWhite,
	core.ColorLightGray,
	core.ColorDarkGray,
	core.ColorBeige,
	core.ColorBrown,
	core.ColorMaroon,
	core.ColorPurple,
	core.ColorViolet,
}

// FallingCircle is an enemy falling straight down.
type FallingCircle struct {
	X, Y   float64 // Center
	Radius float64
	Speed  float64 // Downward, per second
	Color  core.Color
	Type   CircleType
	Health int

	removed bool // Marked for compaction
}

// NewFallingCircle creates a circle just above the top of a screen of the given width.
// Randomness is drawn in a fixed order: color, type, speed, x.
func NewFallingCircle(rng RNG, table CircleTable, width, spawnY float64) FallingCircle {
	color := Palette[rng.Intn(len(Palette))]
	ct := table.Pick(rng)
	spec := table.Spec(ct)
	speed := uniform(rng, spec.MinSpeed, spec.MaxSpeed)
	x := uniform(rng, 0, max(width, 0))

	return FallingCircle{
		X:      x,
		Y:      spawnY,
		Radius: spec.Radius,
		Speed:  speed,
		Color:  color,
		Type:   ct,
		Health: max(spec.Health, 1),
	}
}

// Update moves the circle down.
func (c *FallingCircle) Update(dt float64) {
	c.Y += c.Speed * dt
}

// TakeDamage removes one health point and reports whether the circle is destroyed.
func (c *FallingCircle) TakeDamage() bool {
	c.Health--
	return c.Health <= 0
}

// IsOffScreen reports whether the whole circle has passed the bottom edge.
func (c FallingCircle) IsOffScreen(height float64) bool {
	return c.Y-c.Radius > height
}

// CollidesWith reports whether the circle overlaps r.
func (c FallingCircle) CollidesWith(r core.Rect) bool {
	return core.CircleIntersectsRect(c.X, c.Y, c.Radius, r)
}

// Alive reports whether the circle is still in play this frame.
func (c FallingCircle) Alive() bool {
	return !c.removed
}
