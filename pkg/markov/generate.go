package markov

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// Generate produces a sequence of exactly length symbols. The output
// starts with the first Order() symbols of seed and is extended one
// symbol at a time by sampling from the distribution stored for the
// last Order() symbols of the output so far.
//
// When that context was never observed (possible whenever the seed, or
// a fallback jump, leaves the trained material), Generate recovers by
// picking a uniformly random known context and appending only its last
// symbol: an abrupt jump, but generation never dead-ends.
//
// rng must be owned by the caller for the duration of the call; for a
// fixed rng stream the output is fully reproducible. If length is no
// greater than the order, the first length symbols of seed are returned
// unchanged and rng is not consumed.
//
// Generate returns ErrInsufficientSeed if seed is shorter than the
// model's order, and ErrEmptyModel if symbols must be drawn from a
// model with no contexts.
func (m *Model[S]) Generate(seed []S, length int, rng *rand.Rand) ([]S, error) {
	if len(seed) < m.order {
		return nil, fmt.Errorf("%w: got %d symbols, order %d", ErrInsufficientSeed, len(seed), m.order)
	}
	if length <= m.order {
		if length < 0 {
			length = 0
		}
		out := make([]S, length)
		copy(out, seed[:length])
		return out, nil
	}
	if len(m.keys) == 0 {
		return nil, ErrEmptyModel
	}

	out := make([]S, 0, length)
	out = append(out, seed[:m.order]...)

	// Track the current context as ids; unknown seed symbols become -1,
	// which can never match a stored key.
	ctx := make([]int, m.order)
	for i := range ctx {
		ctx[i] = m.lookup(seed[i])
	}

	var keyBuf []byte
	for len(out) < length {
		keyBuf = appendContextKey(keyBuf[:0], ctx)

		var nextID int
		if st, ok := m.states[string(keyBuf)]; ok {
			nextID = st.draw(rng)
		} else {
			jump := m.states[m.keys[rng.IntN(len(m.keys))]]
			nextID = jump.ctx[len(jump.ctx)-1]
		}

		out = append(out, m.symbols[nextID])
		ctx = append(ctx[1:], nextID)
	}
	return out, nil
}

// draw performs one weighted draw over the candidates in their stored
// first-seen order, via binary search on the cumulative table.
func (st *state) draw(rng *rand.Rand) int {
	r := rng.Float64() * st.cum[len(st.cum)-1]
	i := sort.SearchFloat64s(st.cum, r)
	if i >= len(st.nexts) {
		i = len(st.nexts) - 1
	}
	return st.nexts[i]
}
