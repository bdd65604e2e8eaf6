package dodger

import "math"

// Score combines time survived with kill bonuses.
// Time points accrue fractionally so whole points add up at any frame rate.
type Score struct {
	points int
	frac   float64
	rate   float64 // Points per second
}

// NewScore returns an empty score earning rate points per second.
func NewScore(rate float64) Score {
	return Score{rate: rate}
}

// AddTime credits dt seconds survived.
func (s *Score) AddTime(dt float64) {
	s.frac += s.rate * dt
	whole := math.Floor(s.frac)
	s.points += int(whole)
	s.frac -= whole
}

// AddKill credits a kill bonus.
func (s *Score) AddKill(points int) {
	s.points += points
}

// Value returns the whole points earned.
func (s Score) Value() int {
	return s.points
}
