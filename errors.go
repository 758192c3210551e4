package sortvis

import "errors"

const Namespace = "sortvis"

var (
	// ErrInvalidDataset reports a dataset that is empty, contains a
	// non-positive value, or contains duplicates.
	ErrInvalidDataset = errors.New(Namespace + ": invalid dataset")

	// ErrRunActive reports an attempt to mutate the dataset while a run
	// is in progress.
	ErrRunActive = errors.New(Namespace + ": a run is active")

	// ErrUnknownAlgorithm reports a Start request naming an algorithm
	// identifier outside the built-in set.
	ErrUnknownAlgorithm = errors.New(Namespace + ": unknown algorithm")

	// ErrInvalidSpeed reports a non-positive speed value.
	ErrInvalidSpeed = errors.New(Namespace + ": speed must be positive")

	// ErrRunCancelled marks cooperative cancellation observed at a
	// suspension point. It is a terminal outcome, not a failure: the
	// engine returns to an idle state and accepts new starts.
	ErrRunCancelled = errors.New(Namespace + ": run cancelled")

	// ErrInvalidConfig reports an invalid option value passed to New.
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
