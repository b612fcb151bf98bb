package player

import (
	"math"
	"testing"
	"time"
)

func TestFreqForName(t *testing.T) {
	testCases := []struct {
		name string
		want float64
	}{
		{"A", 440},
		{"C", 261.6256},
		{"Bb", 466.1638},
	}

	for _, tc := range testCases {
		got, ok := FreqForName(tc.name)
		if !ok {
			t.Fatalf("FreqForName(%q) reported no pitch", tc.name)
		}
		if math.Abs(got-tc.want) > 0.001 {
			t.Errorf("FreqForName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}

	if _, ok := FreqForName("not-a-note"); ok {
		t.Error("expected no frequency for an unknown name")
	}
}

// The oscillator must deliver exactly the requested number of samples
// and then report exhaustion; playback timing depends on it.
func TestToneLength(t *testing.T) {
	const d = 100 * time.Millisecond
	s := newTone(440, d)

	var total int
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(d); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("exhausted tone streamed again: n=%d ok=%v", n, ok)
	}
}

func TestToneFades(t *testing.T) {
	s := newTone(440, 50*time.Millisecond)

	buf := make([][2]float64, 1)
	if n, ok := s.Stream(buf); n != 1 || !ok {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	// The very first sample sits at the start of the fade-in.
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 (fade-in)", buf[0][0])
	}
}

func TestPlayRejectsBadTempo(t *testing.T) {
	if err := Play(nil, 0); err == nil {
		t.Error("Play(tempo=0) succeeded, want error")
	}
}
