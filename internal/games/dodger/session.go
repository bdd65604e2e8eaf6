package dodger

import (
	"github.com/vovakirdan/circle-dodger/internal/config"
	"github.com/vovakirdan/circle-dodger/internal/core"
)

// State is the session's phase.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the name of the state.
func (s State) String() string {
	if s == StateGameOver {
		return "gameover"
	}
	return "playing"
}

// Session is one round of play plus the restart loop around it.
// Step is deterministic given the RNG, the inputs and the frame times.
type Session struct {
	cfg   config.DodgerConfig
	rules Rules
	table CircleTable
	rng   RNG

	player  Player
	circles []FallingCircle
	bullets []Bullet

	ammo  Ammo
	lives Lives
	score Score
	kills int

	spawnTimer float64
	elapsed    float64 // Round duration
	overFor    float64 // Time spent on the game over screen
	state      State
}

// NewSession creates a session. Call Reset with the viewport before stepping.
func NewSession(cfg config.DodgerConfig, rules Rules, rng RNG) *Session {
	table := NewCircleTable(cfg.Circles)
	if !rules.Typed {
		table = table.Only(CircleNormal)
	}
	return &Session{
		cfg:   cfg,
		rules: rules,
		table: table,
		rng:   rng,
	}
}

// Reset starts a fresh round on a viewport of the given size.
func (s *Session) Reset(width, height float64) {
	s.player = NewPlayer(s.cfg.Player.Size, s.cfg.Player.Speed, s.cfg.Player.BottomOffset, width, height)
	s.circles = s.circles[:0]
	s.bullets = s.bullets[:0]
	s.ammo = NewAmmo(s.cfg.Weapon.MaxAmmo, s.cfg.Weapon.RechargeSecs)
	s.lives = NewLives(s.rules.Lives, s.cfg.Gameplay.InvincibilitySecs)
	s.score = NewScore(s.cfg.Gameplay.TimeScoreRate)
	s.kills = 0
	s.spawnTimer = 0
	s.elapsed = 0
	s.overFor = 0
	s.state = StatePlaying
}

// Step advances the session by dt seconds on a viewport of the given size
// and returns what happened.
func (s *Session) Step(in core.InputFrame, dt, width, height float64) []Event {
	if s.state == StateGameOver {
		s.overFor += dt
		if s.rules.CanRestart() && in.JustPressed(core.ActionRestart) {
			s.Reset(width, height)
			return []Event{Restarted{}}
		}
		return nil
	}

	var events []Event

	// Move
	dir := 0.0
	if in.IsDown(core.ActionLeft) {
		dir--
	}
	if in.IsDown(core.ActionRight) {
		dir++
	}
	s.player.Move(dir, dt)

	// Fire
	if s.rules.Shooting && in.JustPressed(core.ActionFire) && s.ammo.Take() {
		x, y := s.player.Muzzle()
		s.bullets = append(s.bullets, NewBullet(x, y, s.cfg.Weapon.BulletSpeed))
		events = append(events, Fired{X: x, Y: y, AmmoLeft: s.ammo.Count()})
	}

	s.player.Clamp(width, height)

	// Timers
	s.spawnTimer += dt
	s.elapsed += dt
	s.lives.Tick(dt)
	s.ammo.Recharge(dt)

	// Bullets
	for i := range s.bullets {
		b := &s.bullets[i]
		b.Update(dt)
		if b.IsOffScreen() {
			b.Active = false
		}
	}
	hits := resolveBullets(s.bullets, s.circles, s.killPoints)
	for _, ev := range hits {
		if d, ok := ev.(CircleDestroyed); ok {
			s.score.AddKill(d.Points)
			s.kills++
		}
	}
	events = append(events, hits...)

	// Spawn
	if s.spawnTimer > s.cfg.Spawner.IntervalSecs {
		s.circles = append(s.circles, NewFallingCircle(s.rng, s.table, width, s.cfg.Spawner.SpawnY))
		s.spawnTimer = 0
	}

	// Circles
	for i := range s.circles {
		c := &s.circles[i]
		c.Update(dt)
		if c.IsOffScreen(height) {
			c.removed = true
		}
	}
	playerEvents, over := resolvePlayer(s.circles, s.player.Rect(), &s.lives)
	events = append(events, playerEvents...)

	s.compact()

	if over {
		s.state = StateGameOver
		return append(events, GameOver{Score: s.score.Value(), Kills: s.kills})
	}

	s.score.AddTime(dt)
	return events
}

// killPoints is the bonus for destroying a circle of type t.
func (s *Session) killPoints(t CircleType) int {
	if s.rules.Typed {
		return s.table.Spec(t).Points
	}
	return s.rules.FlatBonus
}

func (s *Session) compact() {
	s.circles = compact(s.circles, func(c *FallingCircle) bool { return c.Alive() })
	s.bullets = compact(s.bullets, func(b *Bullet) bool { return b.Active })
}

// State returns the session's phase.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score.Value() }

// Kills returns the circles destroyed this round.
func (s *Session) Kills() int { return s.kills }

// Lives returns the lives left.
func (s *Session) Lives() int { return s.lives.Count() }

// Ammo returns the bullets available and the pool capacity.
func (s *Session) Ammo() (int, int) { return s.ammo.Count(), s.ammo.Max() }

// Elapsed returns how long the current round has lasted, in seconds.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Player returns the ship.
func (s *Session) Player() Player { return s.player }

// Circles returns the live circles. The slice is owned by the session.
func (s *Session) Circles() []FallingCircle { return s.circles }

// Bullets returns the live bullets. The slice is owned by the session.
func (s *Session) Bullets() []Bullet { return s.bullets }

// ExitDue reports whether the game over screen has been shown long enough
// in a mode that ends the program instead of restarting.
func (s *Session) ExitDue() bool {
	return s.state == StateGameOver && !s.rules.CanRestart() && s.overFor >= s.rules.ExitDelay
}
