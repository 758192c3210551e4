package sortvis

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/sortvis/metrics"
)

// config holds Engine configuration.
type config struct {
	// Dataset is the initial element order. Empty (default) means the
	// engine generates a shuffled permutation of 1..Size.
	Dataset []int

	// Size of the generated dataset when Dataset is empty.
	// Default: 32.
	Size uint

	// Seed for dataset generation and Shuffle. Zero (default) derives a
	// seed from the clock.
	Seed int64

	// Speed is the initial pace setting. The per-step delay is
	// max(1ms, 100ms/Speed).
	// Default: 1.
	Speed float64

	// Metrics provider used for engine instruments.
	// Default: metrics.NewNoopProvider().
	Metrics metrics.Provider

	// Observers subscribed before the first run.
	Observers []Observer
}

// Option configures the Engine. Use New(ctx, opts...) to construct an
// Engine via options. Options return an error on invalid input instead of
// panicking.
type Option func(*config) error

// WithDataset sets the initial dataset. The values must be positive and
// pairwise distinct; the slice is copied at construction.
func WithDataset(values []int) Option {
	return func(cfg *config) error {
		if err := validateDataset(values); err != nil {
			return err
		}
		cfg.Dataset = values
		return nil
	}
}

// WithSize sets the length of the generated dataset (must be > 0).
// Ignored when WithDataset is also given.
func WithSize(n uint) Option {
	return func(cfg *config) error {
		if n == 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithSize requires n > 0"))
		}
		cfg.Size = n
		return nil
	}
}

// WithSeed fixes the seed used for dataset generation and Shuffle,
// making runs reproducible.
func WithSeed(seed int64) Option {
	return func(cfg *config) error { cfg.Seed = seed; return nil }
}

// WithSpeed sets the initial speed (must be positive).
func WithSpeed(v float64) Option {
	return func(cfg *config) error {
		if v <= 0 {
			return errorc.With(ErrInvalidSpeed, errorc.String("", "WithSpeed requires v > 0"))
		}
		cfg.Speed = v
		return nil
	}
}

// WithMetrics sets the metrics provider used for engine instruments.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}

// WithObserver subscribes an observer before the first run. May be given
// multiple times; observers are invoked in subscription order.
func WithObserver(o Observer) Option {
	return func(cfg *config) error {
		if o == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithObserver requires a non-nil observer"))
		}
		cfg.Observers = append(cfg.Observers, o)
		return nil
	}
}
