package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/circle-dodger/internal/audio"
	"github.com/vovakirdan/circle-dodger/internal/core"
	"github.com/vovakirdan/circle-dodger/internal/registry"
	"github.com/vovakirdan/circle-dodger/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Config   core.RuntimeConfig
	Width    int           // Terminal columns at startup
	Height   int           // Terminal rows at startup, including the status row
	Hold     time.Duration // How long a movement key stays down after its last event
	MaxFrame time.Duration // Cap on a single frame's dt
	Audio    audio.Sink
	Store    *storage.Store
	Logger   *log.Logger
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	sink     audio.Sink
	log      *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	mapper   *KeyMapper
	pending  core.InputFrame // Presses since the last tick
	state    core.GameState
	status   StatusBar
	history  History
	width    int
	height   int
	maxFrame time.Duration
	start    time.Time
	last     time.Time
	clock    func() time.Time

	showHistory bool
	quitting    bool
	scoreSaved  bool // Whether the round has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Config.Seed == 0 {
		opts.Config.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Null{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.MaxFrame <= 0 {
		opts.MaxFrame = 100 * time.Millisecond
	}

	keys := DefaultKeyMap()
	height := max(opts.Height, 1)

	return Model{
		game:     game,
		screen:   core.NewScreen(opts.Width, height-1),
		store:    opts.Store,
		sink:     opts.Audio,
		log:      opts.Logger,
		config:   opts.Config,
		keys:     keys,
		mapper:   NewKeyMapper(keys, opts.Hold),
		pending:  core.NewInputFrame(),
		status:   NewStatusBar(game.Title(), keys),
		history:  NewHistory(opts.Store, game.ID(), height),
		width:    opts.Width,
		height:   height,
		maxFrame: opts.MaxFrame,
		clock:    time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.sink.Loop(core.CueMusic)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.GameOver && key.Matches(msg, m.keys.History) {
		m.showHistory = !m.showHistory
		if m.showHistory {
			if err := m.history.Load(); err != nil {
				m.log.Error("cannot load round history", "err", err)
			}
		}
		return m, nil
	}

	if m.showHistory && !key.Matches(msg, m.keys.Restart) {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	action, _ := m.mapper.MapKey(msg)
	switch action {
	case core.ActionLeft, core.ActionRight:
		m.mapper.Latch(action, m.clock())
	case core.ActionFire, core.ActionRestart:
		m.pending.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game reads the new
// viewport on its next step.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = max(msg.Height, 1)
	m.screen.Resize(m.width, m.height-1)
	m.history = NewHistory(m.store, m.game.ID(), m.height)
	if m.showHistory {
		if err := m.history.Load(); err != nil {
			m.log.Error("cannot load round history", "err", err)
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start = now
	}
	dt := core.FrameDelta(m.last, now, m.maxFrame)
	m.last = now

	in := m.pending.Clone()
	m.mapper.Apply(&in, m.clock())

	wasOver := m.state.GameOver
	result := m.game.Step(core.Frame{
		Input:  in,
		Dt:     dt,
		Now:    now.Sub(m.start).Seconds(),
		Width:  float64(m.screen.Width()) * core.CellW,
		Height: float64(m.screen.Height()) * core.CellH,
	})
	m.state = result.State

	for _, cue := range result.Cues {
		m.sink.Play(cue)
	}

	if m.state.GameOver && !m.scoreSaved {
		m.saveRound()
		m.scoreSaved = true
	}
	if wasOver && !m.state.GameOver {
		// Restarted
		m.scoreSaved = false
		m.showHistory = false
		m.mapper.Release()
		m.log.Debug("round restarted", "mode", m.game.ID())
	}

	// Clear input for next frame
	m.pending.Clear()

	if m.state.Done {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRound records the finished round and refreshes the best score.
func (m *Model) saveRound() {
	duration := registry.RoundDuration(m.game)

	m.log.Info("round over",
		"mode", m.game.ID(),
		"score", m.state.Score,
		"kills", m.state.Kills,
		"duration", duration.Round(time.Millisecond),
	)

	if m.store == nil {
		m.status.SetBest(max(m.status.Best(), m.state.Score))
		return
	}

	_, err := m.store.SaveRound(storage.Round{
		Mode:     m.game.ID(),
		Score:    m.state.Score,
		Kills:    m.state.Kills,
		Duration: duration,
	})
	if err != nil {
		m.log.Error("cannot save round", "err", err)
	}

	best, err := m.store.BestScore(m.game.ID())
	if err != nil {
		m.log.Error("cannot read best score", "err", err)
		best = max(m.status.Best(), m.state.Score)
	}
	m.status.SetBest(best)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showHistory {
		body = lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center, m.history.View())
	} else {
		m.game.Draw(core.NewCellCanvas(m.screen))
		body = RenderScreen(m.screen)
	}

	return body + "\n" + m.status.View(m.width)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
