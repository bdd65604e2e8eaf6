package dodger

import (
	"testing"

	"github.com/vovakirdan/circle-dodger/internal/core"
)

func TestAmmoTake(t *testing.T) {
	a := NewAmmo(2, 2.0)

	if !a.Take() || !a.Take() {
		t.Fatal("a full pool of 2 should allow two shots")
	}
	if a.Take() {
		t.Error("Take() on an empty pool = true, expected false")
	}
	if a.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", a.Count())
	}
}

func TestAmmoRecharge(t *testing.T) {
	tests := []struct {
		name  string
		steps []float64
	}{
		{"one big frame", []float64{4.0}},
		{"half second frames", []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}},
		{"overshoot", []float64{3.0, 3.0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAmmo(20, 2.0)
			a.Take()
			a.Take()
			if a.Count() != 18 {
				t.Fatalf("Count() = %d, expected 18", a.Count())
			}

			for _, dt := range tc.steps {
				a.Recharge(dt)
			}

			if a.Count() != 20 {
				t.Errorf("Count() = %d, expected 20", a.Count())
			}
			if a.Timer() != 0 {
				t.Errorf("Timer() = %v, expected 0 once full", a.Timer())
			}
		})
	}
}

func TestAmmoRechargeOnePerInterval(t *testing.T) {
	a := NewAmmo(20, 2.0)
	for range 5 {
		a.Take()
	}

	a.Recharge(1.5)
	if a.Count() != 15 {
		t.Errorf("after 1.5s Count() = %d, expected 15", a.Count())
	}
	a.Recharge(0.5)
	if a.Count() != 16 {
		t.Errorf("after 2.0s Count() = %d, expected 16", a.Count())
	}
	if a.Timer() != 0 {
		t.Errorf("Timer() = %v, expected reset to 0", a.Timer())
	}
}

func TestAmmoTimerIdleWhenFull(t *testing.T) {
	a := NewAmmo(20, 2.0)
	a.Recharge(10)

	if a.Count() != 20 || a.Timer() != 0 {
		t.Errorf("full pool after 10s: count=%d timer=%v, expected 20 and 0", a.Count(), a.Timer())
	}

	// A shot right after idling must wait a full interval.
	a.Take()
	a.Recharge(1.0)
	if a.Count() != 19 {
		t.Errorf("Count() = %d, expected 19", a.Count())
	}
}

func TestLives(t *testing.T) {
	l := NewLives(2, 3.0)

	if l.Blinking() || !l.Visible(0.15) {
		t.Error("fresh lives should not blink")
	}

	l.Hit()
	if l.Count() != 1 || l.Out() {
		t.Errorf("after one hit Count() = %d, Out() = %v", l.Count(), l.Out())
	}
	if !l.Blinking() {
		t.Error("a hit should start the blink")
	}
	if !l.Visible(0.25) {
		t.Error("ship should show on even tenths")
	}
	if l.Visible(0.15) {
		t.Error("ship should hide on odd tenths while blinking")
	}

	// Blink is cosmetic: a second hit still counts.
	l.Hit()
	if !l.Out() {
		t.Error("second hit during the blink should still take the last life")
	}

	l.Hit()
	if l.Count() != 0 {
		t.Errorf("Count() = %d, expected clamp at 0", l.Count())
	}

	l.Tick(5)
	if l.Blinking() || !l.Visible(0.15) {
		t.Error("blink should end after the window")
	}
}

func TestScoreCarriesFractions(t *testing.T) {
	s := NewScore(10)

	// 10 points per second at 64 fps is 0.15625 per frame.
	for range 64 {
		s.AddTime(1.0 / 64)
	}
	if s.Value() != 10 {
		t.Errorf("after 1s Value() = %d, expected 10", s.Value())
	}

	s.AddKill(150)
	if s.Value() != 160 {
		t.Errorf("Value() = %d, expected 160", s.Value())
	}
}

func TestBullet(t *testing.T) {
	b := NewBullet(100, 10, 800)
	if !b.Active {
		t.Fatal("new bullet should be active")
	}

	b.Update(1.0 / 128)
	if b.Y != 3.75 {
		t.Errorf("Y = %v, expected 3.75", b.Y)
	}
	if b.IsOffScreen() {
		t.Error("bullet at y=3.75 should be on screen")
	}
	b.Update(1.0 / 128)
	if !b.IsOffScreen() {
		t.Error("bullet above the top should be off screen")
	}

	c := FallingCircle{X: 100, Y: 0, Radius: 20}
	if !NewBullet(110, 10, 800).CollidesWithCircle(c) {
		t.Error("bullet inside circle should collide")
	}
	if NewBullet(120, 0, 800).CollidesWithCircle(c) {
		t.Error("bullet exactly on the edge should not collide")
	}
}

func TestPlayer(t *testing.T) {
	p := NewPlayer(50, 300, 50, 800, 600)
	if p.X != 400 || p.Y != 550 {
		t.Errorf("start = (%v, %v), expected (400, 550)", p.X, p.Y)
	}

	x, y := p.Muzzle()
	if x != 425 || y != 550 {
		t.Errorf("Muzzle() = (%v, %v), expected (425, 550)", x, y)
	}

	p.Move(1, 10)
	p.Clamp(800, 600)
	if p.X != 750 {
		t.Errorf("X = %v, expected clamp at 750", p.X)
	}

	p.Move(-1, 10)
	p.Clamp(800, 600)
	if p.X != 0 {
		t.Errorf("X = %v, expected clamp at 0", p.X)
	}

	// Shrinking the viewport pulls the ship back inside.
	p.Y = 550
	p.Clamp(300, 200)
	if p.Y != 150 {
		t.Errorf("Y = %v, expected 150", p.Y)
	}

	if p.Rect() != core.NewRect(p.X, p.Y, 50, 50) {
		t.Errorf("Rect() = %+v", p.Rect())
	}
}
