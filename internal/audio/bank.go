// Package audio plays the game's sound cues through beep.
package audio

import (
	"fmt"
	"math"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/circle-dodger/internal/config"
	"github.com/vovakirdan/circle-dodger/internal/core"
)

// sampleRate is what every clip is resampled to and the speaker runs at.
const sampleRate = beep.SampleRate(44100)

// resampleQuality trades CPU for fidelity in beep.Resample.
const resampleQuality = 4

// Clip is a decoded sound held in memory.
type Clip struct {
	buf    *beep.Buffer
	volume float64 // Linear gain, 1 is unchanged
}

// Len returns the clip length in samples at the bank's sample rate.
func (c Clip) Len() int {
	return c.buf.Len()
}

// Stream returns a fresh one-shot streamer at the clip's volume.
func (c Clip) Stream() beep.Streamer {
	return withVolume(c.buf.Streamer(0, c.buf.Len()), c.volume)
}

// LoopStream returns a streamer repeating the clip forever.
func (c Clip) LoopStream() beep.Streamer {
	return withVolume(beep.Loop(-1, c.buf.Streamer(0, c.buf.Len())), c.volume)
}

// Bank holds the clip for each cue.
type Bank struct {
	clips map[core.Cue]Clip
}

// LoadBank decodes the configured WAV files. An empty path leaves that cue
// silent; a path that cannot be read or decoded is an error.
func LoadBank(cfg config.AudioConfig) (*Bank, error) {
	b := &Bank{clips: make(map[core.Cue]Clip)}

	sources := []struct {
		cue    core.Cue
		path   string
		volume float64
	}{
		{core.CueExplosion, cfg.Explosion, cfg.ExplosionVolume},
		{core.CueMusic, cfg.Music, cfg.MusicVolume},
	}

	for _, src := range sources {
		if src.path == "" {
			continue
		}
		buf, err := decodeFile(src.path)
		if err != nil {
			return nil, err
		}
		b.clips[src.cue] = Clip{buf: buf, volume: src.volume}
	}

	return b, nil
}

// Clip returns the clip for a cue.
func (b *Bank) Clip(cue core.Cue) (Clip, bool) {
	if b == nil {
		return Clip{}, false
	}
	c, ok := b.clips[cue]
	return c, ok
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	if format.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}

	return buf, nil
}

// withVolume scales s by a linear gain.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
