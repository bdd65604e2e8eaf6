package window

import (
	"bytes"
	"fmt"
	"io"
	"os"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/circle-dodger/internal/audio"
	"github.com/vovakirdan/circle-dodger/internal/config"
	"github.com/vovakirdan/circle-dodger/internal/core"
)

const sampleRate = 44100

// Sounds plays cues through Ebitengine's audio context.
type Sounds struct {
	ctx          *eaudio.Context
	explosion    []byte // Decoded PCM, replayed for every kill
	explosionVol float64
	music        *eaudio.Player
}

// LoadSounds decodes the configured WAV files. An empty path leaves that cue
// silent; a path that cannot be read or decoded is an error.
func LoadSounds(cfg config.AudioConfig) (*Sounds, error) {
	s := &Sounds{
		ctx:          eaudio.NewContext(sampleRate),
		explosionVol: cfg.ExplosionVolume,
	}

	if cfg.Explosion != "" {
		stream, err := decodeWAV(cfg.Explosion)
		if err != nil {
			return nil, err
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot decode %s: %w", cfg.Explosion, err)
		}
		s.explosion = pcm
	}

	if cfg.Music != "" {
		stream, err := decodeWAV(cfg.Music)
		if err != nil {
			return nil, err
		}
		loop := eaudio.NewInfiniteLoop(stream, stream.Length())
		player, err := s.ctx.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot play %s: %w", cfg.Music, err)
		}
		player.SetVolume(cfg.MusicVolume)
		s.music = player
	}

	return s, nil
}

func decodeWAV(path string) (*wav.Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	return stream, nil
}

// Play starts a new explosion player; overlapping kills overlap.
func (s *Sounds) Play(cue core.Cue) {
	if cue != core.CueExplosion || s.explosion == nil {
		return
	}
	p := s.ctx.NewPlayerFromBytes(s.explosion)
	p.SetVolume(s.explosionVol)
	p.Play()
}

// Loop starts the background track if there is one.
func (s *Sounds) Loop(cue core.Cue) {
	if cue != core.CueMusic || s.music == nil || s.music.IsPlaying() {
		return
	}
	s.music.Play()
}

// Ensure Sounds implements audio.Sink
var _ audio.Sink = (*Sounds)(nil)
