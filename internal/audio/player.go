package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/circle-dodger/internal/core"
)

// Sink receives sound cues from a frontend. Calls never block on playback.
type Sink interface {
	Play(cue core.Cue)
	Loop(cue core.Cue)
}

// Null is a Sink that plays nothing.
type Null struct{}

func (Null) Play(core.Cue) {}
func (Null) Loop(core.Cue) {}

// Player mixes clips from a Bank onto the speaker.
type Player struct {
	mu      sync.Mutex
	bank    *Bank
	mixer   *beep.Mixer
	looping map[core.Cue]*beep.Ctrl
	lock    func() // Guards the mixer against the speaker goroutine
	unlock  func()
}

// NewPlayer opens the audio device and starts an empty mixer on it.
func NewPlayer(bank *Bank) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open device: %w", err)
	}

	p := newPlayer(bank, speaker.Lock, speaker.Unlock)
	speaker.Play(p.mixer)
	return p, nil
}

func newPlayer(bank *Bank, lock, unlock func()) *Player {
	return &Player{
		bank:    bank,
		mixer:   &beep.Mixer{},
		looping: make(map[core.Cue]*beep.Ctrl),
		lock:    lock,
		unlock:  unlock,
	}
}

// Play starts a one-shot copy of the cue's clip. Overlapping plays mix.
func (p *Player) Play(cue core.Cue) {
	clip, ok := p.bank.Clip(cue)
	if !ok {
		return
	}
	p.add(clip.Stream())
}

// Loop starts the cue's clip repeating forever. A cue already looping is left alone.
func (p *Player) Loop(cue core.Cue) {
	clip, ok := p.bank.Clip(cue)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, playing := p.looping[cue]; playing {
		return
	}
	ctrl := &beep.Ctrl{Streamer: clip.LoopStream()}
	p.looping[cue] = ctrl

	p.lock()
	p.mixer.Add(ctrl)
	p.unlock()
}

func (p *Player) add(s beep.Streamer) {
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	for _, ctrl := range p.looping {
		ctrl.Paused = true
	}
	p.mixer.Clear()
	p.unlock()

	clear(p.looping)
	speaker.Close()
}

// Ensure both sinks satisfy Sink
var (
	_ Sink = (*Player)(nil)
	_ Sink = Null{}
)
