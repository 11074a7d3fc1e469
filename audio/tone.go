package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone generates a fixed-frequency sine burst with a short linear fade
// at both ends to avoid speaker clicks
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	fade     int
	rate     beep.SampleRate
}

// NewTone creates a streamer producing freq Hz for the given duration.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	fade := rate.N(5 * time.Millisecond)
	if fade*2 > samples {
		fade = samples / 2
	}
	return &tone{
		freq:     freq,
		duration: samples,
		fade:     fade,
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * t.phase)

		// Envelope
		if t.fade > 0 {
			if t.position < t.fade {
				val *= float64(t.position) / float64(t.fade)
			} else if rem := t.duration - t.position; rem < t.fade {
				val *= float64(rem) / float64(t.fade)
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		t.phase += t.freq / float64(t.rate)
		t.phase = t.phase - math.Floor(t.phase) // Keep in [0, 1)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
