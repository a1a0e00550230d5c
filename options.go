package cubik

import "math/rand"

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	rng          *rand.Rand
	historyLimit int
}

func defaultConfig() *config {
	return &config{
		historyLimit: 0, // unbounded
	}
}

// WithRand sets the random source used by Scramble.
// Use a seeded source for reproducible scrambles.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithHistoryLimit bounds the move history to the last n moves.
// When the bound is exceeded the oldest entries are evicted, which
// limits how far Undo can rewind. The default (0) is unbounded.
func WithHistoryLimit(n int) Option {
	return func(c *config) {
		c.historyLimit = n
	}
}
