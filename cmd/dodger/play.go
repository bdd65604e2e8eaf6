package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/circle-dodger/internal/audio"
	"github.com/vovakirdan/circle-dodger/internal/platform/tui"
	"github.com/vovakirdan/circle-dodger/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The mode defaults to "dodger".

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  Space      - Fire
  R          - Restart (after game over)
  Shift+H    - Round history (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 5 lives, 30 bullets
  normal - Whatever the config file says
  hard   - 2 lives, 10 bullets

Examples:
  dodger play
  dodger play dodger_shooter --difficulty hard
  dodger play --mute --log-file dodger.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	mode, err := resolveMode(args)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	logger, closeLog, err := startLogging(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	return logFailure(logger, mode, func() error {
		return playTerminal(mode, logger)
	})
}

// playTerminal runs one terminal session of the given mode.
func playTerminal(mode string, logger *log.Logger) error {
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
		bank, err := audio.LoadBank(cfg.Audio)
		if err != nil {
			return err
		}
		player, err := audio.NewPlayer(bank)
		if err != nil {
			return err
		}
		defer player.Close()
		sink = player
	}

	width, height := terminalSize()
	logger.Info("starting", "mode", mode, "width", width, "height", height)
	return tui.Run(game, tui.Options{
		Config:   runtimeConfig(),
		Width:    width,
		Height:   height,
		Hold:     time.Duration(cfg.Terminal.HoldMs) * time.Millisecond,
		MaxFrame: time.Duration(cfg.Terminal.MaxFrameMs) * time.Millisecond,
		Audio:    sink,
		Store:    store,
		Logger:   logger,
	})
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
