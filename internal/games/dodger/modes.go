package dodger

import "github.com/vovakirdan/circle-dodger/internal/config"

// Mode selects one of the three rule sets.
type Mode int

const (
	ModeDodger  Mode = iota // Typed circles, shooting, several lives, restart
	ModeShooter             // Normal circles, shooting, one life, restart
	ModeClassic             // Normal circles, dodge only, one life, exits after game over
)

// ID returns the registry identifier for the mode.
func (m Mode) ID() string {
	switch m {
	case ModeShooter:
		return "dodger_shooter"
	case ModeClassic:
		return "dodger_classic"
	default:
		return "dodger"
	}
}

// Modes lists every mode in registration order.
var Modes = []Mode{ModeDodger, ModeShooter, ModeClassic}

// ModeByID finds the mode with the given registry identifier.
func ModeByID(id string) (Mode, bool) {
	for _, m := range Modes {
		if m.ID() == id {
			return m, true
		}
	}
	return 0, false
}

// Title returns the display name for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeShooter:
		return "Circle Dodger (Shooter)"
	case ModeClassic:
		return "Circle Dodger (Classic)"
	default:
		return "Circle Dodger"
	}
}

// Rules are the mode-dependent knobs of a Session.
type Rules struct {
	Lives     int
	Shooting  bool
	Typed     bool    // All circle types spawn and kills score per type
	FlatBonus int     // Kill bonus when not Typed
	ExitDelay float64 // Seconds to show game over before asking to exit; 0 allows restart
}

// RulesFor derives a mode's rules from the configuration.
func RulesFor(m Mode, cfg config.DodgerConfig) Rules {
	switch m {
	case ModeShooter:
		return Rules{
			Lives:     1,
			Shooting:  true,
			FlatBonus: cfg.Gameplay.FlatKillBonus,
		}
	case ModeClassic:
		return Rules{
			Lives:     1,
			ExitDelay: cfg.Gameplay.ExitDelaySecs,
		}
	default:
		return Rules{
			Lives:    cfg.Gameplay.Lives,
			Shooting: true,
			Typed:    true,
		}
	}
}

// CanRestart reports whether R starts a new round after game over.
func (r Rules) CanRestart() bool {
	return r.ExitDelay <= 0
}
