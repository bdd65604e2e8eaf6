package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/circle-dodger/internal/audio"
	"github.com/vovakirdan/circle-dodger/internal/platform/window"
	"github.com/vovakirdan/circle-dodger/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and start a game. The mode defaults to "dodger".
The window can be resized; the playfield follows it.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space      - Fire
  R          - Restart (after game over)
  Q/Esc      - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	mode, err := resolveMode(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := startLogging(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return logFailure(logger, mode, func() error {
		return playWindow(mode, logger)
	})
}

// playWindow runs one windowed session of the given mode.
func playWindow(mode string, logger *log.Logger) error {
	cfg, source, err := loadConfig(flagSettings())
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	game, err := prepareGame(mode, cfg)
	if err != nil {
		return err
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("round history disabled", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	var sink audio.Sink = audio.Null{}
	if !flagMute {
		sounds, err := window.LoadSounds(cfg.Audio)
		if err != nil {
			return err
		}
		sink = sounds
	}

	logger.Info("starting", "mode", mode)
	return window.Run(game, window.Options{
		Config: runtimeConfig(),
		Width:  window.DefaultWidth,
		Height: window.DefaultHeight,
		Audio:  sink,
		Store:  store,
		Logger: logger,
	})
}
