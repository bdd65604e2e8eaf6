package dodger

import "math"

// timerEpsilon absorbs the rounding left by summing many frame deltas, so 120
// frames of 1/60s count as a full 2s.
const timerEpsilon = 1e-9

// Ammo is a regenerating pool of bullets.
type Ammo struct {
	count    int
	max      int
	interval float64 // Seconds per regained bullet
	timer    float64
}

// NewAmmo returns a full pool.
func NewAmmo(capacity int, interval float64) Ammo {
	capacity = max(capacity, 0)
	return Ammo{count: capacity, max: capacity, interval: interval}
}

// Take consumes one bullet if any is left.
func (a *Ammo) Take() bool {
	if a.count <= 0 {
		return false
	}
	a.count--
	return true
}

// Recharge advances the regeneration timer. The timer only runs while the
// pool is below max, and sits at zero once it is full again.
func (a *Ammo) Recharge(dt float64) {
	if a.count >= a.max {
		a.timer = 0
		return
	}
	a.timer += dt
	for a.interval > 0 && a.timer >= a.interval-timerEpsilon && a.count < a.max {
		a.count++
		a.timer = math.Max(a.timer-a.interval, 0)
	}
	if a.count >= a.max {
		a.timer = 0
	}
}

// Count returns the bullets available.
func (a Ammo) Count() int { return a.count }

// Max returns the pool capacity.
func (a Ammo) Max() int { return a.max }

// Timer returns the seconds accumulated toward the next bullet.
func (a Ammo) Timer() float64 { return a.timer }

// Lives counts remaining hits and drives the post-hit blink.
type Lives struct {
	count    int
	window   float64 // Blink duration after a hit
	hitTimer float64
}

// NewLives returns a full set of lives.
func NewLives(count int, window float64) Lives {
	return Lives{count: max(count, 0), window: window}
}

// Hit takes one life and restarts the blink. The count never goes below zero.
// Hits during the blink still count: the window is visual only.
func (l *Lives) Hit() {
	l.count = max(l.count-1, 0)
	l.hitTimer = l.window
}

// Tick counts the blink down.
func (l *Lives) Tick(dt float64) {
	l.hitTimer = math.Max(l.hitTimer-dt, 0)
}

// Out reports whether the round is lost.
func (l Lives) Out() bool { return l.count <= 0 }

// Count returns the lives left.
func (l Lives) Count() int { return l.count }

// Blinking reports whether the post-hit window is active.
func (l Lives) Blinking() bool { return l.hitTimer > 0 }

// Visible reports whether the ship should be drawn at time now (seconds).
// While blinking it shows on even tenths of a second.
func (l Lives) Visible(now float64) bool {
	return !l.Blinking() || int(now*10)%2 == 0
}
