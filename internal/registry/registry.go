// Package registry maps mode ids to game factories. Modes register from
// init(), so frontends and the CLI only need a blank import of the game.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/circle-dodger/internal/core"
)

// Game is a simulation that a frontend can drive one frame at a time.
// Games do no I/O: the frontend maps keys to actions, owns the clock, plays
// the returned cues and supplies the canvas to draw on.
type Game interface {
	// ID is the registry key, e.g. "dodger_shooter".
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts over with the given seed and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances by f.Dt seconds on the viewport f.Width x f.Height.
	Step(f core.Frame) core.StepResult

	// Draw paints the whole canvas.
	Draw(dst core.Canvas)

	State() core.GameState
}

// RoundTimer is implemented by games that know how long the current round
// has lasted.
type RoundTimer interface {
	Elapsed() float64
}

// RoundDuration returns the current round length of g, or 0 when g does not
// track it.
func RoundDuration(g Game) time.Duration {
	rt, ok := g.(RoundTimer)
	if !ok {
		return 0
	}
	return time.Duration(rt.Elapsed() * float64(time.Second))
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. The title is read from one throwaway
// instance. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
