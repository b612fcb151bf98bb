package markov

import (
	"math/rand/v2"
	"testing"
)

// testRNG returns a deterministic random stream for reproducible tests.
func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// buildTestModel is a convenience wrapper that fails the test on error.
func buildTestModel(t *testing.T, seq []string, order int) *Model[string] {
	t.Helper()
	m, err := Build(seq, order)
	if err != nil {
		t.Fatalf("Build(order=%d) failed: %v", order, err)
	}
	return m
}

// auClair is the opening of "Au clair de la lune", enough material for
// branching distributions at orders 1 through 3.
var auClair = []string{
	"C", "C", "C", "D", "E", "D", "C", "E", "D", "D", "C",
	"C", "C", "C", "D", "E", "D", "C", "E", "D", "D", "C",
	"D", "D", "D", "D", "A", "A", "D", "C", "B", "A", "G",
	"C", "C", "C", "D", "E", "D", "C", "E", "D", "D", "C",
}
