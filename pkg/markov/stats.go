package markov

import "math"

// ModelStats holds aggregated statistics for a single model.
type ModelStats struct {
	Contexts     int // distinct contexts observed
	Transitions  int // distinct (context -> next) links
	Observations int // total observations, i.e. max(0, len(seq)-order)
	VocabSize    int // distinct symbols in the training sequence
}

// Stats returns a snapshot of the model's aggregate counts.
func (m *Model[S]) Stats() ModelStats {
	links := 0
	for _, key := range m.keys {
		links += len(m.states[key].nexts)
	}
	return ModelStats{
		Contexts:     len(m.keys),
		Transitions:  links,
		Observations: m.total,
		VocabSize:    len(m.symbols),
	}
}

// Histogram returns the relative frequency of each distinct symbol in
// seq. The values sum to 1 over the symbols present. It returns
// ErrEmptySequence for a zero-length input, since the frequencies would
// be undefined.
func Histogram[S comparable](seq []S) (map[S]float64, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	counts := make(map[S]int)
	for _, s := range seq {
		counts[s]++
	}
	hist := make(map[S]float64, len(counts))
	for s, c := range counts {
		hist[s] = float64(c) / float64(len(seq))
	}
	return hist, nil
}

// Divergence returns the L1 distance between two histograms: the sum
// over the union of their symbols of the absolute frequency difference,
// treating an absent symbol as 0. For normalized histograms the result
// lies in [0, 2]. This is twice the total-variation distance, not an
// information-theoretic divergence; there are no logarithms involved.
func Divergence[S comparable](a, b map[S]float64) float64 {
	var d float64
	for s, va := range a {
		d += math.Abs(va - b[s])
	}
	for s, vb := range b {
		if _, ok := a[s]; !ok {
			d += math.Abs(vb)
		}
	}
	return d
}
