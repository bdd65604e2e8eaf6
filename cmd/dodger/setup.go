package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/circle-dodger/internal/config"
	"github.com/vovakirdan/circle-dodger/internal/core"
	"github.com/vovakirdan/circle-dodger/internal/games/dodger"
	"github.com/vovakirdan/circle-dodger/internal/registry"
)

const defaultMode = "dodger"

// settings collects the flags that shape a session.
type settings struct {
	ConfigPath string
	Difficulty string
	SFX        string
	Music      string
	Mute       bool
}

func flagSettings() settings {
	return settings{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		SFX:        flagSFX,
		Music:      flagMusic,
		Mute:       flagMute,
	}
}

// resolveMode picks the mode named in args, or the default one.
func resolveMode(args []string) (string, error) {
	mode := defaultMode
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return "", fmt.Errorf("unknown mode %q (run 'dodger list' to see available modes)", mode)
	}
	return mode, nil
}

// loadConfig resolves the configuration file, applies the difficulty preset
// and command-line overrides, and validates the result.
func loadConfig(s settings) (config.DodgerConfig, string, error) {
	cfg, source, err := config.LoadDodger(s.ConfigPath)
	if err != nil {
		return config.DodgerConfig{}, "", err
	}

	preset, err := config.ParseDifficulty(s.Difficulty)
	if err != nil {
		return config.DodgerConfig{}, "", err
	}
	config.ApplyDodgerPreset(&cfg, preset)

	if s.SFX != "" {
		cfg.Audio.Explosion = s.SFX
	}
	if s.Music != "" {
		cfg.Audio.Music = s.Music
	}
	if s.Mute {
		cfg.Audio.Explosion = ""
		cfg.Audio.Music = ""
	}

	if err := cfg.Validate(); err != nil {
		return config.DodgerConfig{}, "", err
	}
	return cfg, source, nil
}

// prepareGame installs cfg for new games and creates the mode.
func prepareGame(mode string, cfg config.DodgerConfig) (registry.Game, error) {
	dodger.SetConfig(cfg)
	return registry.Create(mode)
}

func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger builds a logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodger",
		Level:           lvl,
	})
	return logger, nil
}

// openLog returns the log destination: the file at path, or fallback when
// path is empty. The returned close func is always safe to call.
func openLog(path string, fallback io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return fallback, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// startLogging opens the --log-file (or fallback) and builds the logger on
// it. closeLog must be called once the command is done.
func startLogging(fallback io.Writer) (logger *log.Logger, closeLog func(), err error) {
	out, closeLog, err := openLog(flagLogFile, fallback)
	if err != nil {
		return nil, nil, err
	}
	logger, err = newLogger(out, flagLogLevel)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return logger, closeLog, nil
}

// logFailure runs fn and records its error, if any, before handing it back
// to the single exit point in main.
func logFailure(logger *log.Logger, mode string, fn func() error) error {
	if err := fn(); err != nil {
		logger.Error("cannot run game", "mode", mode, "err", err)
		return err
	}
	return nil
}
