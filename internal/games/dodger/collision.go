package dodger

import "github.com/vovakirdan/circle-dodger/internal/core"

// resolveBullets matches active bullets against live circles.
// Circles are visited in order and each takes every bullet inside it until it
// dies, so when one bullet overlaps several circles the first one absorbs it.
// Destroyed circles are marked removed and skipped afterwards.
func resolveBullets(bullets []Bullet, circles []FallingCircle, points func(CircleType) int) []Event {
	var events []Event

	for ci := range circles {
		c := &circles[ci]
		for bi := range bullets {
			if !c.Alive() {
				break
			}
			b := &bullets[bi]
			if !b.Active || !b.CollidesWithCircle(*c) {
				continue
			}

			b.Active = false
			if c.TakeDamage() {
				c.removed = true
				events = append(events, CircleDestroyed{
					Type:   c.Type,
					X:      c.X,
					Y:      c.Y,
					Points: points(c.Type),
				})
			} else {
				events = append(events, CircleDamaged{Type: c.Type, Health: c.Health})
			}
		}
	}
	return events
}

// resolvePlayer removes every live circle touching the player and takes a life
// for each. It stops at the first hit that empties the lives and reports over.
func resolvePlayer(circles []FallingCircle, player core.Rect, lives *Lives) (events []Event, over bool) {
	for ci := range circles {
		c := &circles[ci]
		if !c.Alive() || !c.CollidesWith(player) {
			continue
		}

		c.removed = true
		lives.Hit()
		events = append(events, PlayerHit{LivesLeft: lives.Count()})
		if lives.Out() {
			return events, true
		}
	}
	return events, false
}

// compact drops the items keep rejects, preserving order, reusing the backing array.
func compact[T any](items []T, keep func(*T) bool) []T {
	n := 0
	for i := range items {
		if keep(&items[i]) {
			items[n] = items[i]
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}
