package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/circle-dodger/internal/audio"
	"github.com/vovakirdan/circle-dodger/internal/core"
	"github.com/vovakirdan/circle-dodger/internal/registry"
	"github.com/vovakirdan/circle-dodger/internal/storage"
)

// Default window size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Options configures a window session.
type Options struct {
	Config core.RuntimeConfig
	Width  int
	Height int
	Audio  audio.Sink
	Store  *storage.Store
	Logger *log.Logger
}

// keyBindings maps actions to keyboard keys.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionFire:    {ebiten.KeySpace},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// edgeActions fire once per key press; the rest count while held.
var edgeActions = map[core.Action]bool{
	core.ActionFire:    true,
	core.ActionRestart: true,
	core.ActionQuit:    true,
}

// readInput builds a frame from key state queries.
func readInput(pressed, justPressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			switch {
			case edgeActions[action] && justPressed(k):
				in.Press(action)
			case !edgeActions[action] && pressed(k):
				in.SetDown(action)
			}
		}
	}
	return in
}

// Runner adapts a registry.Game to ebiten.Game.
type Runner struct {
	game   registry.Game
	sink   audio.Sink
	store  *storage.Store
	log    *log.Logger
	now    float64
	width  int
	height int

	started    bool
	scoreSaved bool
	wasOver    bool
}

// NewRunner creates a runner for the game.
func NewRunner(game registry.Game, opts Options) *Runner {
	if opts.Audio == nil {
		opts.Audio = audio.Null{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}
	return &Runner{
		game:   game,
		sink:   opts.Audio,
		store:  opts.Store,
		log:    opts.Logger,
		width:  opts.Width,
		height: opts.Height,
	}
}

// Update advances the game by one tick.
func (r *Runner) Update() error {
	in := readInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	return r.step(in, 1/float64(ebiten.TPS()))
}

func (r *Runner) step(in core.InputFrame, dt float64) error {
	if in.JustPressed(core.ActionQuit) {
		return ebiten.Termination
	}
	if !r.started {
		r.sink.Loop(core.CueMusic)
		r.started = true
	}

	r.now += dt
	res := r.game.Step(core.Frame{
		Input:  in,
		Dt:     dt,
		Now:    r.now,
		Width:  float64(r.width),
		Height: float64(r.height),
	})

	for _, cue := range res.Cues {
		r.sink.Play(cue)
	}

	state := res.State
	if state.GameOver && !r.scoreSaved {
		r.saveRound(state)
		r.scoreSaved = true
	}
	if r.wasOver && !state.GameOver {
		r.scoreSaved = false
	}
	r.wasOver = state.GameOver

	if state.Done {
		return ebiten.Termination
	}
	return nil
}

func (r *Runner) saveRound(state core.GameState) {
	duration := registry.RoundDuration(r.game)

	r.log.Info("round over",
		"mode", r.game.ID(),
		"score", state.Score,
		"kills", state.Kills,
		"duration", duration.Round(time.Millisecond),
	)

	if r.store == nil {
		return
	}
	if _, err := r.store.SaveRound(storage.Round{
		Mode:     r.game.ID(),
		Score:    state.Score,
		Kills:    state.Kills,
		Duration: duration,
	}); err != nil {
		r.log.Error("cannot save round", "err", err)
	}
}

// Draw renders the game onto the window.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.game.Draw(NewCanvas(screen))
}

// Layout uses the window size as the viewport, so resizing the window
// resizes the playfield.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	r.width, r.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the game ends or the window closes.
func Run(game registry.Game, opts Options) error {
	r := NewRunner(game, opts)

	tps := opts.Config.TickRate
	if tps <= 0 {
		tps = 60
	}
	game.Reset(opts.Config)

	ebiten.SetWindowSize(r.width, r.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(r); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
