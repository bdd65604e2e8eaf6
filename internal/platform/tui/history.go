package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/circle-dodger/internal/storage"
)

// maxRounds is how many past rounds the history table loads.
const maxRounds = 50

// History is the table of this run's finished rounds, shown over the game
// over screen.
type History struct {
	store  *storage.Store
	mode   string
	rounds []storage.Round
	stats  storage.ModeStats
	table  table.Model
	height int
}

// NewHistory creates a history view for one mode.
func NewHistory(store *storage.Store, mode string, height int) History {
	h := History{store: store, mode: mode, height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a new table with appropriate columns.
func (h *History) createTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Kills", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(h.height-8, 3)), // Leave room for title and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Load reads the rounds and their totals from the store and fills the
// table, newest first.
func (h *History) Load() error {
	h.rounds = nil
	h.stats = storage.ModeStats{Mode: h.mode}
	defer h.updateTableRows()

	if h.store == nil {
		return nil
	}

	rounds, err := h.store.Rounds(h.mode, maxRounds)
	if err != nil {
		return err
	}
	stats, err := h.store.Stats(h.mode)
	if err != nil {
		return err
	}
	h.rounds = rounds
	h.stats = stats
	return nil
}

// Summary describes every round of the mode played this run.
func (h History) Summary() string {
	s := h.stats
	if s.Rounds == 0 {
		return ""
	}
	noun := "rounds"
	if s.Rounds == 1 {
		noun = "round"
	}
	return fmt.Sprintf("%d %s  |  best %d  |  avg %.0f  |  %d kills  |  %s played",
		s.Rounds, noun, s.BestScore, s.AvgScore, s.Kills, s.PlayTime.Round(time.Second))
}

// updateTableRows updates the table with the loaded rounds.
func (h *History) updateTableRows() {
	rows := make([]table.Row, len(h.rounds))
	for i, r := range h.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", len(h.rounds)-i),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}
	h.table.SetRows(rows)

	// Reset cursor to top
	h.table.GotoTop()
}

// Rows returns the number of rounds shown.
func (h History) Rows() int {
	return len(h.rounds)
}

// Update passes navigation keys to the table.
func (h History) Update(msg tea.Msg) (History, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

// View renders the table or an empty message inside a border.
func (h History) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := h.table.View()
	if len(h.rounds) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No rounds finished yet.")
	}

	parts := []string{titleStyle.Render("ROUNDS THIS RUN")}
	if summary := h.Summary(); summary != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(summary))
	}
	parts = append(parts, boxStyle.Render(content))
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
