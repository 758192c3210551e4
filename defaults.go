package sortvis

import "github.com/ygrebnov/sortvis/metrics"

// defaultConfig centralizes default values for config.
// These defaults are the base every New call builds on.
func defaultConfig() config {
	return config{
		Size:    32,
		Seed:    0, // clock-derived
		Speed:   1, // 100ms per step
		Metrics: metrics.NewNoopProvider(),
	}
}

// validateConfig performs lightweight invariants checks after options ran.
// Dataset and speed values are validated by their options; nothing else
// requires hard validation at the moment.
func validateConfig(_ *config) error {
	return nil
}
