package dodger

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/circle-dodger/internal/config"
	"github.com/vovakirdan/circle-dodger/internal/core"
)

const (
	viewW = 800.0
	viewH = 600.0
)

func normalAt(x, y float64) FallingCircle {
	return FallingCircle{X: x, Y: y, Radius: 20, Type: CircleNormal, Health: 1, Color: core.ColorRed}
}

func bigAt(x, y float64) FallingCircle {
	return FallingCircle{X: x, Y: y, Radius: 35, Type: CircleBig, Health: 2, Color: core.ColorGreen}
}

func TestSessionStart(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())

	if s.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing", s.State())
	}
	if s.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", s.Lives())
	}
	if ammo, maxAmmo := s.Ammo(); ammo != 20 || maxAmmo != 20 {
		t.Errorf("Ammo() = %d/%d, expected 20/20", ammo, maxAmmo)
	}
	p := s.Player()
	if p.X != 400 || p.Y != 550 {
		t.Errorf("player at (%v, %v), expected (400, 550)", p.X, p.Y)
	}
}

func TestFireWithoutAmmo(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())
	s.ammo = NewAmmo(0, 2.0)

	events := s.Step(press(core.ActionFire), 0, viewW, viewH)

	if len(s.Bullets()) != 0 {
		t.Errorf("bullets = %d, expected 0", len(s.Bullets()))
	}
	if ammo, _ := s.Ammo(); ammo != 0 {
		t.Errorf("ammo = %d, expected 0", ammo)
	}
	if countEvents[Fired](events) != 0 {
		t.Error("dry fire should not emit Fired")
	}
}

func TestFireWithAmmo(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())

	events := s.Step(press(core.ActionFire), 0, viewW, viewH)

	if ammo, _ := s.Ammo(); ammo != 19 {
		t.Errorf("ammo = %d, expected 19", ammo)
	}
	bullets := s.Bullets()
	if len(bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(bullets))
	}
	mx, my := s.Player().Muzzle()
	if bullets[0].X != mx || bullets[0].Y != my {
		t.Errorf("bullet at (%v, %v), expected muzzle (%v, %v)", bullets[0].X, bullets[0].Y, mx, my)
	}
	if countEvents[Fired](events) != 1 {
		t.Error("expected one Fired event")
	}
}

func TestFireIsEdgeTriggered(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())

	for range 10 {
		s.Step(hold(core.ActionFire), 0, viewW, viewH)
	}

	if len(s.Bullets()) != 0 {
		t.Errorf("holding fire spawned %d bullets, expected 0", len(s.Bullets()))
	}
}

func TestAmmoRechargesInSession(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())
	s.ammo.Take()
	s.ammo.Take()

	for range 8 {
		s.Step(core.NewInputFrame(), 0.5, viewW, viewH)
	}

	if ammo, _ := s.Ammo(); ammo != 20 {
		t.Errorf("ammo = %d, expected 20", ammo)
	}
	if s.ammo.Timer() != 0 {
		t.Errorf("recharge timer = %v, expected 0", s.ammo.Timer())
	}
}

func TestAmmoRechargesAtFrameRate(t *testing.T) {
	tests := []struct {
		frames   int
		expected int
	}{
		{119, 18},
		{120, 19},
		{239, 19},
		{240, 20},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d frames", tc.frames), func(t *testing.T) {
			s := newTestSession(ModeDodger, testConfig())
			s.ammo.Take()
			s.ammo.Take()

			for range tc.frames {
				s.Step(core.NewInputFrame(), 1.0/60, viewW, viewH)
			}

			if ammo, _ := s.Ammo(); ammo != tc.expected {
				t.Errorf("ammo after %d frames = %d, expected %d (timer %v)", tc.frames, ammo, tc.expected, s.ammo.Timer())
			}
			if tc.expected == 20 && s.ammo.Timer() != 0 {
				t.Errorf("recharge timer = %v, expected 0 once full", s.ammo.Timer())
			}
		})
	}
}

func TestBulletKillsNormalCircle(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())
	s.circles = append(s.circles, normalAt(425, 300))

	events := s.Step(press(core.ActionFire), 0.3, viewW, viewH)

	if countEvents[CircleDestroyed](events) != 1 {
		t.Fatalf("expected one CircleDestroyed, got events %v", events)
	}
	if s.Score() != 100 {
		t.Errorf("Score() = %d, expected 100", s.Score())
	}
	if s.Kills() != 1 {
		t.Errorf("Kills() = %d, expected 1", s.Kills())
	}
	if len(s.Circles()) != 0 || len(s.Bullets()) != 0 {
		t.Errorf("circles=%d bullets=%d, expected both empty", len(s.Circles()), len(s.Bullets()))
	}
}

func TestBigCircleNeedsTwoBullets(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())
	s.circles = append(s.circles, bigAt(425, 300))

	events := s.Step(press(core.ActionFire), 0.3, viewW, viewH)

	if countEvents[CircleDamaged](events) != 1 || countEvents[CircleDestroyed](events) != 0 {
		t.Fatalf("first hit events = %v, expected one CircleDamaged", events)
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d after first hit, expected 0", s.Score())
	}
	if got := s.Circles()[0].Health; got != 1 {
		t.Errorf("Health = %d, expected 1", got)
	}

	events = s.Step(press(core.ActionFire), 0.3, viewW, viewH)

	if countEvents[CircleDestroyed](events) != 1 {
		t.Fatalf("second hit events = %v, expected CircleDestroyed", events)
	}
	if s.Score() != 200 {
		t.Errorf("Score() = %d, expected 200", s.Score())
	}
	for _, c := range s.Circles() {
		if c.Type == CircleBig {
			t.Error("big circle should be gone after the second hit")
		}
	}
}

func TestFirstCircleAbsorbsBullet(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())
	s.circles = append(s.circles, normalAt(425, 300), normalAt(425, 305))

	s.Step(press(core.ActionFire), 0.3, viewW, viewH)

	circles := s.Circles()
	if len(circles) != 1 {
		t.Fatalf("circles = %d, expected 1", len(circles))
	}
	if circles[0].Y != 305 {
		t.Errorf("surviving circle at y=%v, expected the second one (305)", circles[0].Y)
	}
}

func TestDeadCircleAbsorbsNoBullets(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())
	s.circles = append(s.circles, normalAt(425, 300))
	s.bullets = append(s.bullets, NewBullet(425, 300, 800), NewBullet(425, 302, 800))

	events := s.Step(core.NewInputFrame(), 0, viewW, viewH)

	if countEvents[CircleDestroyed](events) != 1 {
		t.Errorf("events = %v, expected exactly one kill", events)
	}
	if len(s.Bullets()) != 1 || !s.Bullets()[0].Active {
		t.Errorf("bullets = %+v, expected the second bullet to fly on", s.Bullets())
	}
	if s.Score() != 100 {
		t.Errorf("Score() = %d, expected 100", s.Score())
	}
}

func TestPlayerHitCostsLife(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())
	s.circles = append(s.circles, normalAt(425, 575))

	events := s.Step(core.NewInputFrame(), 0, viewW, viewH)

	if countEvents[PlayerHit](events) != 1 {
		t.Fatalf("events = %v, expected PlayerHit", events)
	}
	if s.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", s.Lives())
	}
	if len(s.Circles()) != 0 {
		t.Error("circle that hit the player should be removed")
	}
	if !s.lives.Blinking() {
		t.Error("hit should start the blink")
	}

	// Still blinking, but the next hit counts anyway.
	s.circles = append(s.circles, normalAt(425, 575))
	s.Step(core.NewInputFrame(), 0, viewW, viewH)
	if s.Lives() != 1 {
		t.Errorf("Lives() = %d, expected 1", s.Lives())
	}
	if s.State() != StatePlaying {
		t.Error("session should keep playing with a life left")
	}
}

func TestGameOverStopsTheFrame(t *testing.T) {
	cfg := config.DefaultDodgerConfig() // time scoring on
	s := newTestSession(ModeShooter, cfg)
	s.circles = append(s.circles, normalAt(425, 575), normalAt(430, 575))

	events := s.Step(core.NewInputFrame(), 0.5, viewW, viewH)

	if countEvents[PlayerHit](events) != 1 {
		t.Errorf("PlayerHit events = %d, expected 1", countEvents[PlayerHit](events))
	}
	if countEvents[GameOver](events) != 1 {
		t.Fatalf("events = %v, expected GameOver", events)
	}
	if s.State() != StateGameOver {
		t.Errorf("State() = %v, expected gameover", s.State())
	}
	if s.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", s.Lives())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected no time score on the losing frame", s.Score())
	}
	if len(s.Circles()) != 1 {
		t.Errorf("circles = %d, expected the unprocessed circle to remain", len(s.Circles()))
	}

	// Game over ignores gameplay input.
	if ev := s.Step(press(core.ActionFire, core.ActionLeft), 0.5, viewW, viewH); len(ev) != 0 {
		t.Errorf("game over step returned %v, expected nothing", ev)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	s := newTestSession(ModeDodger, config.DefaultDodgerConfig())

	// Earn some score, spend ammo, leave things on screen.
	s.circles = append(s.circles, normalAt(425, 300))
	s.Step(press(core.ActionFire), 0.3, viewW, viewH)
	s.Step(press(core.ActionFire), 0.1, viewW, viewH)
	s.Step(hold(core.ActionLeft), 1.0, viewW, viewH)
	if s.Score() == 0 || s.Kills() != 1 {
		t.Fatalf("setup failed: score=%d kills=%d", s.Score(), s.Kills())
	}

	// Lose.
	s.lives = NewLives(1, 3.0)
	p := s.Player()
	s.circles = append(s.circles, normalAt(p.X+25, p.Y+25))
	s.Step(core.NewInputFrame(), 0.01, viewW, viewH)
	if s.State() != StateGameOver {
		t.Fatal("expected game over")
	}

	events := s.Step(press(core.ActionRestart), 0.01, viewW, viewH)

	if countEvents[Restarted](events) != 1 {
		t.Fatalf("events = %v, expected Restarted", events)
	}
	if s.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing", s.State())
	}
	if s.Score() != 0 || s.Kills() != 0 {
		t.Errorf("score=%d kills=%d, expected 0", s.Score(), s.Kills())
	}
	if s.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", s.Lives())
	}
	if ammo, maxAmmo := s.Ammo(); ammo != maxAmmo {
		t.Errorf("Ammo() = %d/%d, expected full", ammo, maxAmmo)
	}
	if len(s.Circles()) != 0 || len(s.Bullets()) != 0 {
		t.Errorf("circles=%d bullets=%d, expected none", len(s.Circles()), len(s.Bullets()))
	}
	if s.Elapsed() != 0 || s.spawnTimer != 0 {
		t.Error("timers should restart")
	}
	if p := s.Player(); p.X != 400 || p.Y != 550 {
		t.Errorf("player at (%v, %v), expected start position", p.X, p.Y)
	}
}

func TestClassicMode(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(ModeClassic, cfg)

	s.Step(press(core.ActionFire), 0, viewW, viewH)
	if len(s.Bullets()) != 0 {
		t.Error("classic mode should not shoot")
	}

	s.circles = append(s.circles, normalAt(425, 575))
	s.Step(core.NewInputFrame(), 0, viewW, viewH)
	if s.State() != StateGameOver {
		t.Fatal("one hit should end a classic round")
	}

	for i := 0; i < 3; i++ {
		if ev := s.Step(press(core.ActionRestart), 0.5, viewW, viewH); len(ev) != 0 {
			t.Fatalf("classic mode should ignore restart, got %v", ev)
		}
		if s.ExitDue() {
			t.Fatalf("exit due after %.1fs, expected %.1fs", float64(i+1)*0.5, cfg.Gameplay.ExitDelaySecs)
		}
	}
	s.Step(core.NewInputFrame(), 0.5, viewW, viewH)
	if !s.ExitDue() {
		t.Error("exit should be due after the display delay")
	}
}

func TestShooterFlatBonus(t *testing.T) {
	s := newTestSession(ModeShooter, testConfig())
	s.circles = append(s.circles, normalAt(425, 300))

	s.Step(press(core.ActionFire), 0.3, viewW, viewH)

	if s.Score() != 50 {
		t.Errorf("Score() = %d, expected flat bonus 50", s.Score())
	}
}

func TestPlayerMovementAndClamp(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())

	s.Step(hold(core.ActionRight), 0.1, viewW, viewH)
	if got := s.Player().X; got != 430 {
		t.Errorf("X = %v, expected 430", got)
	}

	s.Step(hold(core.ActionLeft, core.ActionRight), 0.1, viewW, viewH)
	if got := s.Player().X; got != 430 {
		t.Errorf("opposite keys moved the ship to %v", got)
	}

	s.Step(hold(core.ActionLeft), 10, viewW, viewH)
	if got := s.Player().X; got != 0 {
		t.Errorf("X = %v, expected clamp at 0", got)
	}

	// The viewport is re-read every frame.
	s.Step(hold(core.ActionRight), 10, 300, 200)
	p := s.Player()
	if p.X != 250 || p.Y != 150 {
		t.Errorf("player at (%v, %v), expected (250, 150) on a 300x200 viewport", p.X, p.Y)
	}
}

func TestSpawnCadence(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())

	counts := make([]int, 0, 6)
	for range 6 {
		s.Step(core.NewInputFrame(), 0.25, viewW, viewH)
		counts = append(counts, len(s.Circles()))
	}

	expected := []int{0, 0, 1, 1, 1, 2}
	for i := range expected {
		if counts[i] != expected[i] {
			t.Errorf("circles after step %d = %d, expected %d", i+1, counts[i], expected[i])
		}
	}
}

func TestOffScreenEntitiesAreRemoved(t *testing.T) {
	s := newTestSession(ModeDodger, testConfig())
	c := normalAt(100, 615)
	c.Speed = 100
	s.circles = append(s.circles, c)
	s.bullets = append(s.bullets, NewBullet(700, 5, 800))

	s.Step(core.NewInputFrame(), 0.1, viewW, viewH)

	if len(s.Circles()) != 0 {
		t.Error("circle below the screen should be removed")
	}
	if len(s.Bullets()) != 0 {
		t.Error("bullet above the screen should be removed")
	}
}

func TestTimeScoreAtHighFrameRate(t *testing.T) {
	s := newTestSession(ModeDodger, config.DefaultDodgerConfig())

	for range 64 {
		s.Step(core.NewInputFrame(), 1.0/64, viewW, viewH)
	}

	if s.Score() != 10 {
		t.Errorf("Score() = %d after 1s, expected 10", s.Score())
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() *Session {
		cfg := config.DefaultDodgerConfig()
		s := NewSession(cfg, RulesFor(ModeDodger, cfg), NewRNG(12345))
		s.Reset(viewW, viewH)
		for i := 0; i < 900; i++ {
			in := core.NewInputFrame()
			if i%20 == 0 {
				in.Press(core.ActionFire)
			}
			if (i/60)%2 == 0 {
				in.SetDown(core.ActionLeft)
			} else {
				in.SetDown(core.ActionRight)
			}
			s.Step(in, 1.0/60, viewW, viewH)
		}
		return s
	}

	a, b := run(), run()

	if a.Score() != b.Score() || a.Kills() != b.Kills() || a.Lives() != b.Lives() {
		t.Errorf("runs differ: score %d/%d kills %d/%d lives %d/%d",
			a.Score(), b.Score(), a.Kills(), b.Kills(), a.Lives(), b.Lives())
	}
	if len(a.Circles()) != len(b.Circles()) {
		t.Fatalf("circle counts differ: %d vs %d", len(a.Circles()), len(b.Circles()))
	}
	for i := range a.Circles() {
		if a.Circles()[i] != b.Circles()[i] {
			t.Errorf("circle %d differs: %+v vs %+v", i, a.Circles()[i], b.Circles()[i])
		}
	}
}
