// Package audio plays sfx cues through an oto context.
package audio

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"lavalamp/internal/sfx"

	"github.com/hajimehoshi/oto/v2"
)

// maxVoices bounds simultaneous cues so rapid spawning cannot pile up players.
const maxVoices = 6

// System owns the oto context. A nil *System is valid and silent.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	voices int32
}

// New opens the audio device. volume is clamped to [0, 1].
func New(volume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(sfx.SampleRate, sfx.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	return &System{ctx: ctx, ready: ready, volume: clamp01(volume)}, nil
}

// Play renders cue c and plays it on its own player. It never blocks the
// caller; cues are dropped while the device is still starting or too many
// are already playing.
func (s *System) Play(c sfx.Cue, param float64) {
	if s == nil || s.volume <= 0 {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	if atomic.AddInt32(&s.voices, 1) > maxVoices {
		atomic.AddInt32(&s.voices, -1)
		return
	}
	samples := sfx.Generate(c, param)
	if len(samples) == 0 {
		atomic.AddInt32(&s.voices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&s.voices, -1)
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(s.volume)
		player.Play()
		time.Sleep(time.Duration(sfx.Duration(samples) * float64(time.Second)))
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
