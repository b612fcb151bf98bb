package melody

import (
	"math/rand/v2"
)

// Note is one playable note: a pitch name ("C", "F#", "Bb", ...) and a
// duration in beats, where 1.0 is a quarter note.
type Note struct {
	Name  string
	Beats float64
}

// Source is a named melody: parallel note and duration tracks plus the
// tempo it is meant to be played at.
type Source struct {
	Name  string
	Tempo int // beats per minute
	Notes []string
	Beats []float64
}

// Palette is the set of durations random rhythm generation draws from:
// eighth, quarter and half notes.
var Palette = []float64{0.5, 1, 2}

// RandomBeats returns n durations drawn independently and uniformly
// from Palette. Rhythm is not Markov-modeled; this is the whole story.
func RandomBeats(n int, rng *rand.Rand) []float64 {
	beats := make([]float64, n)
	for i := range beats {
		beats[i] = Palette[rng.IntN(len(Palette))]
	}
	return beats
}

// Zip aligns a note track with a duration track position-wise,
// truncating to the shorter of the two.
func Zip(names []string, beats []float64) []Note {
	n := len(names)
	if len(beats) < n {
		n = len(beats)
	}
	notes := make([]Note, n)
	for i := 0; i < n; i++ {
		notes[i] = Note{Name: names[i], Beats: beats[i]}
	}
	return notes
}

// AuClairDeLaLune returns the classic French nursery melody in C major.
func AuClairDeLaLune() Source {
	return Source{
		Name:  "au_clair",
		Tempo: 120,
		Notes: []string{
			"C", "C", "C", "D", "E", "D", "C", "E", "D", "D", "C",
			"C", "C", "C", "D", "E", "D", "C", "E", "D", "D", "C",
			"D", "D", "D", "D", "A", "A", "D", "C", "B", "A", "G",
			"C", "C", "C", "D", "E", "D", "C", "E", "D", "D", "C",
		},
		Beats: []float64{
			1, 1, 1, 1, 2, 2, 1, 1, 1, 1, 4,
			1, 1, 1, 1, 2, 2, 1, 1, 1, 1, 4,
			1, 1, 1, 1, 2, 2, 1, 1, 1, 1, 4,
			1, 1, 1, 1, 2, 2, 1, 1, 1, 1, 4,
		},
	}
}

// Marseillaise returns the opening bars of La Marseillaise, simplified
// to a single voice in F.
func Marseillaise() Source {
	return Source{
		Name:  "marseillaise",
		Tempo: 80,
		Notes: []string{
			"F", "F", "F", "D", "G", "G",
			"A", "A", "Bb", "G",
			"A", "Bb", "C", "C", "Bb", "A",
			"G", "F", "F",
			"Bb", "Bb", "Bb", "A", "G", "A",
			"Bb", "G", "A", "F",
			"G", "G", "A", "G", "F", "E",
			"D", "C", "C",
			"C", "C", "D", "E", "F",
			"F", "G", "A", "Bb", "C",
		},
		Beats: []float64{
			1, 0.5, 0.5, 1, 1, 1,
			0.5, 0.5, 1, 2,
			0.5, 0.5, 0.5, 0.5, 0.5, 0.5,
			1, 1, 2,
			1, 0.5, 0.5, 1, 1, 1,
			0.5, 0.5, 1, 2,
			0.5, 0.5, 0.5, 0.5, 0.5, 0.5,
			1, 1, 2,
			0.5, 0.5, 0.5, 0.5, 1,
			0.5, 0.5, 0.5, 0.5, 2,
		},
	}
}
