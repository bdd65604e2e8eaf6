package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the default Circle Dodger configuration.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		Player: PlayerConfig{
			Size:         50,
			Speed:        300,
			BottomOffset: 50,
		},
		Weapon: WeaponConfig{
			MaxAmmo:      20,
			RechargeSecs: 2.0,
			BulletSpeed:  800,
			BulletRadius: 5,
		},
		Spawner: SpawnerConfig{
			IntervalSecs: 0.5,
			SpawnY:       -50,
		},
		Gameplay: GameplayConfig{
			Lives:             3,
			InvincibilitySecs: 3.0,
			TimeScoreRate:     10,
			FlatKillBonus:     50,
			ExitDelaySecs:     2.0,
		},
		Circles: CirclesConfig{
			Normal: CircleTypeConfig{Radius: 20, MinSpeed: 100, MaxSpeed: 250, Health: 1, Points: 100, Weight: 70},
			Fast:   CircleTypeConfig{Radius: 15, MinSpeed: 250, MaxSpeed: 1000, Health: 1, Points: 150, Weight: 15},
			Big:    CircleTypeConfig{Radius: 35, MinSpeed: 80, MaxSpeed: 150, Health: 2, Points: 200, Weight: 15},
		},
		Audio: AudioConfig{
			Explosion:       "shoot.wav",
			Music:           "background.wav",
			ExplosionVolume: 0.5,
			MusicVolume:     0.3,
		},
		Terminal: TerminalConfig{
			HoldMs:     150,
			MaxFrameMs: 100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dodger":
		return defaultDodgerYAML
	default:
		return nil
	}
}
