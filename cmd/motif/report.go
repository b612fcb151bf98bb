package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/melographe/motif/pkg/markov"
)

// printHistogram renders a histogram as sorted rows of frequency bars,
// 50 characters for a frequency of 1.
func printHistogram(w io.Writer, hist map[string]float64) {
	names := make([]string, 0, len(hist))
	for name := range hist {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		freq := hist[name]
		bar := strings.Repeat("#", int(freq*50))
		fmt.Fprintf(w, "  %-2s %.2f %s\n", name, freq, bar)
	}
}

// printModelPreview shows the first few contexts of the transition
// matrix and, per context, the first few next-note probabilities.
func printModelPreview(w io.Writer, m *markov.Model[string], maxContexts, maxTransitions int) {
	contexts := m.Contexts()
	fmt.Fprintf(w, "Transition matrix preview (%d contexts):\n", m.Len())

	for i, ctx := range contexts {
		if i >= maxContexts {
			fmt.Fprintf(w, "  ... and %d more contexts\n", len(contexts)-maxContexts)
			break
		}
		dist, ok := m.Distribution(ctx)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s:\n", strings.Join(ctx, " -> "))

		names := make([]string, 0, len(dist))
		for name := range dist {
			names = append(names, name)
		}
		sort.Strings(names)
		for j, name := range names {
			if j >= maxTransitions {
				fmt.Fprintf(w, "    ... and %d more transitions\n", len(names)-maxTransitions)
				break
			}
			fmt.Fprintf(w, "    -> %s: %.2f\n", name, dist[name])
		}
	}
}

// meanHistogram averages several histograms symbol-wise, matching how
// the per-order report compares a batch of generated melodies against
// the source.
func meanHistogram(hists []map[string]float64) map[string]float64 {
	mean := make(map[string]float64)
	for _, h := range hists {
		for name, freq := range h {
			mean[name] += freq
		}
	}
	for name := range mean {
		mean[name] /= float64(len(hists))
	}
	return mean
}
