package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/circle-dodger/internal/config"
	"github.com/vovakirdan/circle-dodger/internal/games/dodger"
	"github.com/vovakirdan/circle-dodger/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows the registered modes and what each one changes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	writeModes(os.Stdout, registry.List(), config.DefaultDodgerConfig())
}

// writeModes prints one row per mode with its rules under cfg.
func writeModes(w io.Writer, games []registry.GameInfo, cfg config.DodgerConfig) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No modes available.")
		return
	}

	idWidth, titleWidth := len("ID"), len("Title")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
		titleWidth = max(titleWidth, len(g.Title))
	}

	fmt.Fprintln(w, "Available modes:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "Rules")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idWidth, "--", titleWidth, "-----", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idWidth, g.ID, titleWidth, g.Title, describeMode(g.ID, cfg))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'dodger play <id>' or 'dodger window <id>' to play.")
}

// describeMode summarizes a mode's rules in a few words.
func describeMode(id string, cfg config.DodgerConfig) string {
	m, ok := dodger.ModeByID(id)
	if !ok {
		return ""
	}
	r := dodger.RulesFor(m, cfg)

	parts := []string{fmt.Sprintf("%d %s", r.Lives, plural(r.Lives, "life", "lives"))}
	switch {
	case !r.Shooting:
		parts = append(parts, "dodge only")
	case r.Typed:
		parts = append(parts, "all circle types")
	default:
		parts = append(parts, fmt.Sprintf("%d per kill", r.FlatBonus))
	}
	if !r.CanRestart() {
		parts = append(parts, "exits after game over")
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
