package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/circle-dodger/internal/core"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorStatusGray.Hex()))
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorYellow.Hex())).Bold(true)
)

// StatusBar is the footer row under the playfield: mode, best score, key help.
type StatusBar struct {
	title string
	best  int
	keys  KeyMap
	help  help.Model
}

// NewStatusBar creates a status bar for a mode.
func NewStatusBar(title string, keys KeyMap) StatusBar {
	h := help.New()
	h.ShowAll = false
	return StatusBar{title: title, keys: keys, help: h}
}

// SetBest records the best score of this run.
func (s *StatusBar) SetBest(best int) {
	s.best = best
}

// Best returns the best score shown.
func (s StatusBar) Best() int {
	return s.best
}

// View renders the bar, truncating the help to fit width.
func (s StatusBar) View(width int) string {
	left := statusStyle.Render(s.title+"  ") + bestStyle.Render(fmt.Sprintf("best %d", s.best))

	s.help.Width = max(width-lipgloss.Width(left)-2, 0)
	right := s.help.View(s.keys)

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + fmt.Sprintf("%*s", gap, "") + right
}
