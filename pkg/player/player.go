// Package player renders melodies through the system speaker, for a
// quick preview without opening the generated MIDI files elsewhere.
package player

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/melographe/motif/pkg/melody"
	"github.com/melographe/motif/pkg/midi"
)

const sampleRate = beep.SampleRate(44100)

var (
	initOnce sync.Once
	initErr  error
)

// tone is a fixed-length sine oscillator with a short linear fade at
// both ends so consecutive notes do not click.
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	fade     int
}

func newTone(freq float64, d time.Duration) beep.Streamer {
	samples := sampleRate.N(d)
	fade := sampleRate.N(5 * time.Millisecond)
	if fade*2 > samples {
		fade = samples / 2
	}
	return &tone{freq: freq, duration: samples, fade: fade}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * o.phase)
		switch {
		case o.position < o.fade:
			val *= float64(o.position) / float64(o.fade)
		case o.duration-o.position <= o.fade:
			val *= float64(o.duration-o.position) / float64(o.fade)
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// FreqForName returns the equal-temperament frequency of a named note
// in the middle octave, or false when the name is not a pitch.
func FreqForName(name string) (float64, bool) {
	key, ok := midi.KeyForName[name]
	if !ok {
		return 0, false
	}
	return 440 * math.Pow(2, (float64(key)-69)/12), true
}

// Play renders the melody at the given tempo and blocks until the last
// note has finished. Names without a pitch mapping become rests of the
// same duration, keeping the rhythm intact.
func Play(notes []melody.Note, tempo int) error {
	if tempo <= 0 {
		return fmt.Errorf("player: tempo must be positive, got %d", tempo)
	}
	initOnce.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if initErr != nil {
		return fmt.Errorf("player: audio init failed: %w", initErr)
	}

	beat := time.Duration(float64(time.Minute) / float64(tempo))
	streamers := make([]beep.Streamer, 0, len(notes)+1)
	for _, n := range notes {
		d := time.Duration(n.Beats * float64(beat))
		freq, ok := FreqForName(n.Name)
		if !ok {
			freq = 0 // a silent rest
		}
		streamers = append(streamers, newTone(freq, d))
	}

	done := make(chan struct{})
	streamers = append(streamers, beep.Callback(func() { close(done) }))
	speaker.Play(beep.Seq(streamers...))
	<-done
	return nil
}
