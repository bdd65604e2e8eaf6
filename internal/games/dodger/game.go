// Package dodger implements Circle Dodger: a ship at the bottom of the screen
// dodges and shoots circles falling from the top.
package dodger

import (
	"sync"
	"time"

	"github.com/vovakirdan/circle-dodger/internal/config"
	"github.com/vovakirdan/circle-dodger/internal/core"
	"github.com/vovakirdan/circle-dodger/internal/registry"
)

var (
	cfgMu     sync.RWMutex
	activeCfg = config.DefaultDodgerConfig()
)

// SetConfig sets the configuration used by games created afterwards.
// The CLI calls it once after loading the config file.
func SetConfig(cfg config.DodgerConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	activeCfg = cfg
}

func currentConfig() config.DodgerConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return activeCfg
}

// Game adapts a Session to the platform's registry.Game interface.
type Game struct {
	mode    Mode
	cfg     config.DodgerConfig
	session *Session
	placed  bool    // Whether the session has seen a viewport yet
	now     float64 // Seconds since start, from the last frame
}

// New creates a game in the given mode with the current configuration.
func New(mode Mode) *Game {
	return NewWithConfig(mode, currentConfig())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(mode Mode, cfg config.DodgerConfig) *Game {
	return &Game{mode: mode, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.mode.ID()
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.mode.Title()
}

// Reset initializes the game. The first Step places the player, since that is
// when the viewport is known.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.session = NewSession(g.cfg, RulesFor(g.mode, g.cfg), NewRNG(seed))
	g.placed = false
	g.now = 0
}

// Step advances the game by one frame.
func (g *Game) Step(f core.Frame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	if !g.placed {
		g.session.Reset(f.Width, f.Height)
		g.placed = true
	}
	g.now = f.Now

	events := g.session.Step(f.Input, f.Dt, f.Width, f.Height)
	return core.StepResult{
		State: g.State(),
		Cues:  cuesFor(events),
	}
}

// cuesFor turns simulation events into sounds.
func cuesFor(events []Event) []core.Cue {
	var cues []core.Cue
	for _, ev := range events {
		if _, ok := ev.(CircleDestroyed); ok {
			cues = append(cues, core.CueExplosion)
		}
	}
	return cues
}

// Draw renders the game onto the canvas.
func (g *Game) Draw(dst core.Canvas) {
	if g.session == nil || !g.placed {
		dst.Clear(core.ColorBlack)
		return
	}
	g.session.Draw(dst, g.now)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	s := g.session
	ammo, maxAmmo := s.Ammo()
	return core.GameState{
		Score:    s.Score(),
		Kills:    s.Kills(),
		Lives:    s.Lives(),
		Ammo:     ammo,
		MaxAmmo:  maxAmmo,
		GameOver: s.State() == StateGameOver,
		Done:     s.ExitDue(),
	}
}

// Elapsed returns the duration of the current round in seconds.
func (g *Game) Elapsed() float64 {
	if g.session == nil {
		return 0
	}
	return g.session.Elapsed()
}

// Ensure Game implements registry.Game
var _ registry.Game = (*Game)(nil)

func init() {
	for _, m := range Modes {
		registry.Register(m.ID(), func() registry.Game {
			return New(m)
		})
	}
}
