package dodger

import (
	"github.com/vovakirdan/circle-dodger/internal/config"
	"github.com/vovakirdan/circle-dodger/internal/core"
)

// scriptedRNG replays fixed values and returns zero once they run out.
type scriptedRNG struct {
	floats []float64
	ints   []int
}

func (r *scriptedRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRNG) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// drawCall is one recorded canvas operation.
type drawCall struct {
	op      string
	x, y    float64
	a, b    float64 // radius/thickness, or w/h
	text    string
	size    float64
	color   core.Color
	corners [6]float64
}

// recordingCanvas is a Canvas that remembers what was drawn.
type recordingCanvas struct {
	w, h  float64
	calls []drawCall
}

func newRecordingCanvas(w, h float64) *recordingCanvas {
	return &recordingCanvas{w: w, h: h}
}

func (c *recordingCanvas) Width() float64  { return c.w }
func (c *recordingCanvas) Height() float64 { return c.h }

func (c *recordingCanvas) Clear(col core.Color) {
	c.calls = append(c.calls, drawCall{op: "clear", color: col})
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, col core.Color) {
	c.calls = append(c.calls, drawCall{op: "rect", x: x, y: y, a: w, b: h, color: col})
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, col core.Color) {
	c.calls = append(c.calls, drawCall{op: "circle", x: cx, y: cy, a: r, color: col})
}

func (c *recordingCanvas) StrokeCircle(cx, cy, r, thickness float64, col core.Color) {
	c.calls = append(c.calls, drawCall{op: "ring", x: cx, y: cy, a: r, b: thickness, color: col})
}

func (c *recordingCanvas) FillTriangle(x1, y1, x2, y2, x3, y3 float64, col core.Color) {
	c.calls = append(c.calls, drawCall{op: "triangle", corners: [6]float64{x1, y1, x2, y2, x3, y3}, color: col})
}

func (c *recordingCanvas) DrawText(text string, x, y, size float64, col core.Color) {
	c.calls = append(c.calls, drawCall{op: "text", x: x, y: y, text: text, size: size, color: col})
}

// MeasureText pretends every glyph is half as wide as the font size.
func (c *recordingCanvas) MeasureText(text string, size float64) float64 {
	return float64(len(text)) * size / 2
}

func (c *recordingCanvas) count(op string) int {
	n := 0
	for _, call := range c.calls {
		if call.op == op {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) text(s string) (drawCall, bool) {
	for _, call := range c.calls {
		if call.op == "text" && call.text == s {
			return call, true
		}
	}
	return drawCall{}, false
}

// testConfig is the default configuration without time scoring, so tests can
// assert exact kill bonuses.
func testConfig() config.DodgerConfig {
	cfg := config.DefaultDodgerConfig()
	cfg.Gameplay.TimeScoreRate = 0
	return cfg
}

// newTestSession returns a session on an 800x600 viewport whose spawns land
// at x = 0 as slow Normal circles.
func newTestSession(mode Mode, cfg config.DodgerConfig) *Session {
	s := NewSession(cfg, RulesFor(mode, cfg), &scriptedRNG{})
	s.Reset(800, 600)
	return s
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.SetDown(a)
	}
	return in
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}
