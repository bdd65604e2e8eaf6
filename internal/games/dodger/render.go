package dodger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/circle-dodger/internal/core"
)

// Drawing constants
const (
	gradientSteps = 50
	hudTextSize   = 30
	lifeDotRadius = 10
	lifeDotX      = 20
	lifeDotY      = 80
	lifeDotGap    = 30
	trailOffset   = 10  // Fast circles: ghost drawn this far above
	trailScale    = 0.8 // Fast circles: ghost radius factor
	trailAlpha    = 0.5
	ringGap       = 5 // Big circles: outline radius beyond the body
	ringWidth     = 2
)

// Draw renders the session onto dst. now is seconds since start and drives
// the background animation and the post-hit blink.
func (s *Session) Draw(dst core.Canvas, now float64) {
	if s.state == StateGameOver {
		s.drawGameOver(dst)
		return
	}

	drawGradient(dst, now)
	s.drawHUD(dst)

	if s.lives.Visible(now) {
		p := s.player
		dst.FillTriangle(
			p.X+p.Size/2, p.Y, // nose
			p.X, p.Y+p.Size, // left wing
			p.X+p.Size, p.Y+p.Size, // right wing
			core.ColorBlue,
		)
	}

	for _, b := range s.bullets {
		dst.FillCircle(b.X, b.Y, s.cfg.Weapon.BulletRadius, core.ColorWhite)
	}

	for _, c := range s.circles {
		drawCircle(dst, c)
	}
}

func (s *Session) drawHUD(dst core.Canvas) {
	dst.DrawText(fmt.Sprintf("Score: %d", s.score.Value()), 10, 20, hudTextSize, core.ColorWhite)
	if s.rules.Shooting {
		dst.DrawText(fmt.Sprintf("Ammo: %d/%d", s.ammo.Count(), s.ammo.Max()), 10, 50, hudTextSize, core.ColorYellow)
	}
	for i := range s.lives.Count() {
		dst.FillCircle(lifeDotX+float64(i)*lifeDotGap, lifeDotY, lifeDotRadius, core.ColorRed)
	}
}

func (s *Session) drawGameOver(dst core.Canvas) {
	dst.Clear(core.ColorBlack)

	w, h := dst.Width(), dst.Height()
	centered := func(text string, y, size float64, c core.Color) {
		x := w/2 - dst.MeasureText(text, size)/2
		dst.DrawText(text, x, y, size, c)
	}

	centered("Game Over", h/2-40, 50, core.ColorRed)
	centered(fmt.Sprintf("Final Score: %d", s.score.Value()), h/2, 40, core.ColorWhite)
	if s.rules.CanRestart() {
		centered("Press R to Restart", h/2+50, 30, core.ColorGreen)
	}
}

// drawCircle draws a circle with its type's decoration.
func drawCircle(dst core.Canvas, c FallingCircle) {
	dst.FillCircle(c.X, c.Y, c.Radius, c.Color)
	switch c.Type {
	case CircleFast:
		dst.FillCircle(c.X, c.Y-trailOffset, c.Radius*trailScale, c.Color.WithAlpha(trailAlpha))
	case CircleBig:
		dst.StrokeCircle(c.X, c.Y, c.Radius+ringGap, ringWidth, core.ColorWhite)
	}
}

// drawGradient paints the animated vertical background in horizontal bands.
func drawGradient(dst core.Canvas, now float64) {
	top := [3]float64{
		0.1 + 0.2*math.Sin(now*0.5),
		0,
		0.3 + 0.3*math.Cos(now*0.3),
	}
	bottom := [3]float64{
		0,
		0.3 + 0.3*math.Sin(now*0.4),
		0.6 + 0.3*math.Cos(now*0.2),
	}

	w, h := dst.Width(), dst.Height()
	band := h / gradientSteps
	for i := range gradientSteps {
		t := float64(i) / gradientSteps
		col := core.ColorFromFloats(
			top[0]*(1-t)+bottom[0]*t,
			top[1]*(1-t)+bottom[1]*t,
			top[2]*(1-t)+bottom[2]*t,
		)
		dst.FillRect(0, float64(i)*band, w, band, col)
	}
}
