package quiz

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Rand is the source of randomness used for sampling and shuffling.
// IntN returns a uniform value in [0, n).
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the default source. *rand.Rand from math/rand/v2 satisfies Rand.
func WithRand(r Rand) Option {
	return func(g *Generator) {
		g.rnd = r
	}
}

// Generator produces batches of questions from a fixed table.
type Generator struct {
	pairs     []Pair
	batchSize int
	// distinct translations other than the key, in table order
	pools map[string][]string

	mu  sync.Mutex
	rnd Rand
}

// NewGenerator validates the table against the batch size and precomputes the
// distractor pools. Every condition that would produce a malformed batch is
// reported here, so Generate never fails.
func NewGenerator(pairs []Pair, batchSize int, opts ...Option) (*Generator, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyTable
	}
	if batchSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	if batchSize > len(pairs) {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, batchSize, len(pairs))
	}

	seen := make(map[string]bool, len(pairs))
	var translations []string
	known := make(map[string]bool)
	for _, p := range pairs {
		if seen[p.Symbol] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, p.Symbol)
		}
		seen[p.Symbol] = true
		if !known[p.Translation] {
			known[p.Translation] = true
			translations = append(translations, p.Translation)
		}
	}

	pools := make(map[string][]string, len(translations))
	for _, t := range translations {
		pool := make([]string, 0, len(translations)-1)
		for _, other := range translations {
			if other != t {
				pool = append(pool, other)
			}
		}
		pools[t] = pool
	}
	for _, p := range pairs {
		if n := len(pools[p.Translation]); n < OptionCount-1 {
			return nil, fmt.Errorf("%w: %q has %d, need %d",
				ErrInsufficientDistractors, p.Symbol, n, OptionCount-1)
		}
	}

	g := &Generator{
		pairs:     append([]Pair(nil), pairs...),
		batchSize: batchSize,
		pools:     pools,
		rnd:       globalRand{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// BatchSize returns the number of questions per batch.
func (g *Generator) BatchSize() int { return g.batchSize }

// Pairs returns a copy of the table the generator draws from.
func (g *Generator) Pairs() []Pair { return append([]Pair(nil), g.pairs...) }

// Generate draws a new batch. Prompts are distinct within a batch and every
// question carries its correct answer once among OptionCount distinct options.
func (g *Generator) Generate() []Question {
	g.mu.Lock()
	defer g.mu.Unlock()

	picked := sample(g.rnd, g.pairs, g.batchSize)
	out := make([]Question, len(picked))
	for i, p := range picked {
		options := make([]string, 0, OptionCount)
		options = append(options, p.Translation)
		options = append(options, sample(g.rnd, g.pools[p.Translation], OptionCount-1)...)
		shuffle(g.rnd, options)

		out[i] = Question{
			ID:            i,
			Prompt:        p.Symbol,
			Options:       options,
			CorrectAnswer: p.Translation,
		}
	}
	return out
}

// sample returns n distinct elements of items in random order (partial
// Fisher-Yates over a copy). items is left untouched.
func sample[T any](r Rand, items []T, n int) []T {
	buf := append([]T(nil), items...)
	if n > len(buf) {
		n = len(buf)
	}
	for i := 0; i < n; i++ {
		j := i + r.IntN(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:n]
}

// shuffle permutes items in place uniformly.
func shuffle[T any](r Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
