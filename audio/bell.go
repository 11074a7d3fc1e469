package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Alert tone shape: high and short, closer to a keyboard click than a
// console BEL
const (
	alertFreq     = 880.0
	alertDuration = 90 * time.Millisecond
	alertVolume   = -2.0 // effects.Volume steps, base 2
)

// Bell plays the synthesized alert tone. When no audio backend is
// available it stays disabled and Ring is a no-op, so callers can wire
// it unconditionally.
type Bell struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewBell creates a bell; call Initialize before first use
func NewBell() *Bell {
	return &Bell{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the mixer. An error leaves
// the bell permanently silent; callers may ignore it and fall back to
// the terminal BEL.
func (b *Bell) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Ring queues one alert tone. Safe to call when disabled.
func (b *Bell) Ring() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	streamer := NewTone(alertFreq, alertDuration, sampleRate)
	b.mixer.Add(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   alertVolume,
	})
}

// Alert implements the prompt alert capability
func (b *Bell) Alert() {
	b.Ring()
}

// Cleanup silences all queued tones and detaches the mixer.
// Note: beep doesn't provide a Close() for the speaker, but clearing
// the mixer ensures no audio artifacts linger past the prompt.
func (b *Bell) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	b.mixer.Clear()
	b.initialized = false
}
