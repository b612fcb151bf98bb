package markov

import (
	"strconv"
)

// Model is an immutable transition model of a fixed order n: a mapping
// from each observed length-n context to a probability distribution
// over the symbols that followed it. Build it once with Build; after
// that it is read-only and safe to share between goroutines.
type Model[S comparable] struct {
	order   int
	symbols []S       // id -> symbol, in first-seen order
	ids     map[S]int // symbol -> id
	states  map[string]*state
	keys    []string // context keys in first-seen order
	total   int      // total (context -> next) observations
}

// state holds one context's conditional distribution. Candidates stay
// in first-seen order; that order is what the cumulative table (and
// therefore sampling) is defined over.
type state struct {
	ctx    []int // the symbol ids forming this context, oldest first
	nexts  []int // candidate next-symbol ids
	counts []int
	total  int
	cum    []float64 // cumulative probabilities, cum[len-1] == 1.0
}

func (st *state) observe(id int) {
	for i, n := range st.nexts {
		if n == id {
			st.counts[i]++
			st.total++
			return
		}
	}
	st.nexts = append(st.nexts, id)
	st.counts = append(st.counts, 1)
	st.total++
}

// finalize converts the raw counters into a cumulative probability
// table used for weighted draws.
func (st *state) finalize() {
	st.cum = make([]float64, len(st.counts))
	var run float64
	for i, c := range st.counts {
		run += float64(c) / float64(st.total)
		st.cum[i] = run
	}
}

// Build constructs an order-n transition model from seq in a single
// pass. A sequence with len(seq) <= order yields a valid empty model.
// It returns ErrInvalidOrder if order < 1.
func Build[S comparable](seq []S, order int) (*Model[S], error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}

	m := &Model[S]{
		order:  order,
		ids:    make(map[S]int),
		states: make(map[string]*state),
	}
	if len(seq) <= order {
		return m, nil
	}

	interned := make([]int, len(seq))
	for i, s := range seq {
		interned[i] = m.intern(s)
	}

	var keyBuf []byte
	for i := 0; i+order < len(seq); i++ {
		window := interned[i : i+order]
		keyBuf = appendContextKey(keyBuf[:0], window)
		key := string(keyBuf)

		st, ok := m.states[key]
		if !ok {
			st = &state{ctx: append([]int(nil), window...)}
			m.states[key] = st
			m.keys = append(m.keys, key)
		}
		st.observe(interned[i+order])
		m.total++
	}

	for _, key := range m.keys {
		m.states[key].finalize()
	}
	return m, nil
}

// intern maps a symbol to its vocabulary id, assigning a new id on
// first sight.
func (m *Model[S]) intern(s S) int {
	if id, ok := m.ids[s]; ok {
		return id
	}
	id := len(m.symbols)
	m.ids[s] = id
	m.symbols = append(m.symbols, s)
	return id
}

// lookup returns the id of a symbol, or -1 if the model never saw it.
// A -1 in a context never matches a stored key, which routes generation
// into the fallback path.
func (m *Model[S]) lookup(s S) int {
	if id, ok := m.ids[s]; ok {
		return id
	}
	return -1
}

// appendContextKey encodes a context as its space-joined symbol ids.
// One encoding serves every order; an order-1 context is simply a
// one-id key.
func appendContextKey(buf []byte, ids []int) []byte {
	for j, id := range ids {
		if j > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(id), 10)
	}
	return buf
}

// Order returns the model's chain order.
func (m *Model[S]) Order() int { return m.order }

// Len returns the number of distinct contexts the model observed.
func (m *Model[S]) Len() int { return len(m.keys) }

// Contexts returns every observed context, in first-seen order. The
// returned slices are copies; callers may keep or modify them.
func (m *Model[S]) Contexts() [][]S {
	out := make([][]S, 0, len(m.keys))
	for _, key := range m.keys {
		st := m.states[key]
		ctx := make([]S, len(st.ctx))
		for i, id := range st.ctx {
			ctx[i] = m.symbols[id]
		}
		out = append(out, ctx)
	}
	return out
}

// Distribution returns the conditional next-symbol distribution for a
// context, or false if the model never observed it. Probabilities are
// in (0, 1] and sum to 1; a transition observed zero times is absent.
func (m *Model[S]) Distribution(ctx []S) (map[S]float64, bool) {
	st, ok := m.find(ctx)
	if !ok {
		return nil, false
	}
	dist := make(map[S]float64, len(st.nexts))
	for i, id := range st.nexts {
		dist[m.symbols[id]] = float64(st.counts[i]) / float64(st.total)
	}
	return dist, true
}

func (m *Model[S]) find(ctx []S) (*state, bool) {
	if len(ctx) != m.order {
		return nil, false
	}
	ids := make([]int, m.order)
	for i, s := range ctx {
		id := m.lookup(s)
		if id < 0 {
			return nil, false
		}
		ids[i] = id
	}
	st, ok := m.states[string(appendContextKey(nil, ids))]
	return st, ok
}
