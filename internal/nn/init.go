package nn

import (
	"fmt"
	"math/rand"
)

// Option configures how modules are constructed.
type Option func(*config)

type config struct {
	rng *rand.Rand
	act Activation
}

func newConfig(opts []Option) *config {
	cfg := &config{act: Tanh}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed makes weight initialization reproducible.
//
// Two models built with the same seed and the same dimensions start with
// bit-identical weights.
func WithSeed(seed int64) Option {
	return func(c *config) {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws initial weights from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithActivation selects the nonlinearity applied by every neuron.
//
// Default: Tanh.
func WithActivation(act Activation) Option {
	return func(c *config) {
		c.act = act
	}
}

// uniform returns a weight drawn from U[-1, 1).
func (c *config) uniform() float64 {
	if c.rng == nil {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		return rand.Float64()*2.0 - 1.0
	}
	return c.rng.Float64()*2.0 - 1.0
}

func mustPositive(what string, n int) {
	if n <= 0 {
		panic(fmt.Sprintf("nn: %s must be positive, got %d", what, n))
	}
}
