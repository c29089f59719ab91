// File: config.go
// Role: functional options and the resolved config they mutate, the same
// two-type split as the teacher's builder.BuilderOption/builderConfig.
package historygen

import "math/rand"

// Option customizes a Build call by mutating a config before any
// Constructor runs.
type Option func(*config)

// config holds the knobs every Constructor may read. rng is nil unless a
// seed was supplied; constructors that need randomness must tolerate that
// (RandomCASRegister requires a seed and errors without one; the fixed
// scenario constructors never touch rng at all).
type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds cfg.rng deterministically. Required by RandomCASRegister;
// ignored by the fixed scenario constructors.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
