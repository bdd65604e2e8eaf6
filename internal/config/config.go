// Package config provides YAML/TOML game configuration loading and
// difficulty presets for Circle Dodger.
package config

import (
	"errors"
	"fmt"
)

// DodgerConfig contains all tunable parameters for Circle Dodger.
// Distances are world units (pixels in the window frontend), times are seconds.
type DodgerConfig struct {
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Weapon   WeaponConfig   `yaml:"weapon" toml:"weapon"`
	Spawner  SpawnerConfig  `yaml:"spawner" toml:"spawner"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Circles  CirclesConfig  `yaml:"circles" toml:"circles"`
	Audio    AudioConfig    `yaml:"audio" toml:"audio"`
	Terminal TerminalConfig `yaml:"terminal" toml:"terminal"`
}

// PlayerConfig defines the player's ship.
type PlayerConfig struct {
	Size         float64 `yaml:"size" toml:"size"`                   // Side of the square hitbox
	Speed        float64 `yaml:"speed" toml:"speed"`                 // Horizontal speed per second
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Start y is height minus this
}

// WeaponConfig defines bullets and the ammo pool.
type WeaponConfig struct {
	MaxAmmo      int     `yaml:"max_ammo" toml:"max_ammo"`
	RechargeSecs float64 `yaml:"recharge_secs" toml:"recharge_secs"` // Time to regain one bullet
	BulletSpeed  float64 `yaml:"bullet_speed" toml:"bullet_speed"`
	BulletRadius float64 `yaml:"bullet_radius" toml:"bullet_radius"` // Drawing only
}

// SpawnerConfig defines how often circles appear.
type SpawnerConfig struct {
	IntervalSecs float64 `yaml:"interval_secs" toml:"interval_secs"`
	SpawnY       float64 `yaml:"spawn_y" toml:"spawn_y"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives             int     `yaml:"lives" toml:"lives"`
	InvincibilitySecs float64 `yaml:"invincibility_secs" toml:"invincibility_secs"` // Blink window after a hit
	TimeScoreRate     float64 `yaml:"time_score_rate" toml:"time_score_rate"`       // Points per second survived
	FlatKillBonus     int     `yaml:"flat_kill_bonus" toml:"flat_kill_bonus"`       // Per-kill bonus in untyped modes
	ExitDelaySecs     float64 `yaml:"exit_delay_secs" toml:"exit_delay_secs"`       // Game over display time before exit
}

// CircleTypeConfig is one row of the enemy table.
type CircleTypeConfig struct {
	Radius   float64 `yaml:"radius" toml:"radius"`
	MinSpeed float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"`
	Health   int     `yaml:"health" toml:"health"`
	Points   int     `yaml:"points" toml:"points"`
	Weight   int     `yaml:"weight" toml:"weight"` // Relative spawn chance
}

// CirclesConfig holds the enemy table, one row per circle type.
type CirclesConfig struct {
	Normal CircleTypeConfig `yaml:"normal" toml:"normal"`
	Fast   CircleTypeConfig `yaml:"fast" toml:"fast"`
	Big    CircleTypeConfig `yaml:"big" toml:"big"`
}

// AudioConfig locates the sound assets.
// An empty path disables that sound; a set path must load or startup fails.
type AudioConfig struct {
	Explosion       string  `yaml:"explosion" toml:"explosion"`
	Music           string  `yaml:"music" toml:"music"`
	ExplosionVolume float64 `yaml:"explosion_volume" toml:"explosion_volume"`
	MusicVolume     float64 `yaml:"music_volume" toml:"music_volume"`
}

// TerminalConfig tunes the terminal frontend.
type TerminalConfig struct {
	// HoldMs is how long a movement key counts as held after its last
	// key event. Terminals report repeats, not releases.
	HoldMs int `yaml:"hold_ms" toml:"hold_ms"`
	// MaxFrameMs caps a single frame's dt after a stall.
	MaxFrameMs int `yaml:"max_frame_ms" toml:"max_frame_ms"`
}

// Validate checks that the configuration describes a playable game.
func (c DodgerConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("player.size", c.Player.Size)
	positive("player.speed", c.Player.Speed)
	positive("weapon.recharge_secs", c.Weapon.RechargeSecs)
	positive("weapon.bullet_speed", c.Weapon.BulletSpeed)
	positive("spawner.interval_secs", c.Spawner.IntervalSecs)
	positive("gameplay.lives", float64(c.Gameplay.Lives))

	if c.Weapon.MaxAmmo < 0 {
		errs = append(errs, fmt.Errorf("weapon.max_ammo must not be negative, got %d", c.Weapon.MaxAmmo))
	}
	if c.Gameplay.InvincibilitySecs < 0 || c.Gameplay.ExitDelaySecs < 0 || c.Gameplay.TimeScoreRate < 0 {
		errs = append(errs, errors.New("gameplay timers and rates must not be negative"))
	}

	weights := 0
	for _, row := range []struct {
		name string
		cfg  CircleTypeConfig
	}{
		{"normal", c.Circles.Normal},
		{"fast", c.Circles.Fast},
		{"big", c.Circles.Big},
	} {
		if row.cfg.Radius <= 0 {
			errs = append(errs, fmt.Errorf("circles.%s.radius must be positive", row.name))
		}
		if row.cfg.Health <= 0 {
			errs = append(errs, fmt.Errorf("circles.%s.health must be positive", row.name))
		}
		if row.cfg.MinSpeed <= 0 || row.cfg.MaxSpeed < row.cfg.MinSpeed {
			errs = append(errs, fmt.Errorf("circles.%s speed range [%v, %v] is invalid", row.name, row.cfg.MinSpeed, row.cfg.MaxSpeed))
		}
		if row.cfg.Weight < 0 {
			errs = append(errs, fmt.Errorf("circles.%s.weight must not be negative", row.name))
		}
		weights += row.cfg.Weight
	}
	if weights <= 0 {
		errs = append(errs, errors.New("circles: at least one type needs a positive weight"))
	}

	vol := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}
	vol("audio.explosion_volume", c.Audio.ExplosionVolume)
	vol("audio.music_volume", c.Audio.MusicVolume)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal or hard)", s)
	}
}

// ApplyDodgerPreset modifies the config based on a difficulty preset.
// Normal keeps whatever the file says.
func ApplyDodgerPreset(cfg *DodgerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Weapon.MaxAmmo = 30
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Weapon.MaxAmmo = 10
	}
}
