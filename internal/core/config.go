package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; the viewport itself is not part
// of it because it is re-read every frame.
type RuntimeConfig struct {
	TickRate int   // Frames per second the driver aims for (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Kills    int  // Circles destroyed this round
	Lives    int  // Remaining lives
	Ammo     int  // Bullets available
	MaxAmmo  int  // Ammo capacity
	GameOver bool // Whether the round has ended
	Done     bool // Game asks the platform to exit
}

// Frame is everything a game needs to advance one simulation step.
// Width and Height are the current viewport in world units; drivers fill them
// in every frame so a resize takes effect immediately.
type Frame struct {
	Input  InputFrame
	Dt     float64 // Seconds since the previous frame
	Now    float64 // Seconds since the program started, for animation
	Width  float64
	Height float64
}

// Cue is a sound request emitted by a game step.
type Cue int

const (
	CueNone      Cue = iota
	CueExplosion     // a circle was destroyed
	CueMusic         // background track
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueExplosion:
		return "explosion"
	case CueMusic:
		return "music"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any cues the platform should play.
type StepResult struct {
	State GameState
	Cues  []Cue
}

// FrameDelta converts the wall-clock gap between two frames into seconds,
// capped at max so a stalled terminal does not teleport entities.
func FrameDelta(prev, now time.Time, max time.Duration) float64 {
	if prev.IsZero() || !now.After(prev) {
		return 0
	}
	d := now.Sub(prev)
	if d > max {
		d = max
	}
	return d.Seconds()
}
