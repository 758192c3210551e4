package sortvis

import "github.com/ygrebnov/sortvis/metrics"

// instruments groups the engine's metric instruments. Totals accumulate
// across runs; per-run figures come from the Sequence counters and the run
// timestamps instead.
type instruments struct {
	comparisons   metrics.Counter
	accesses      metrics.Counter
	swaps         metrics.Counter
	runsCompleted metrics.Counter
	runsCancelled metrics.Counter
	activeRuns    metrics.UpDownCounter
	runDuration   metrics.Histogram
}

func newInstruments(p metrics.Provider) *instruments {
	return &instruments{
		comparisons: p.Counter("sortvis_comparisons_total",
			metrics.WithDescription("element comparisons across all runs"), metrics.WithUnit("1")),
		accesses: p.Counter("sortvis_accesses_total",
			metrics.WithDescription("element reads and writes across all runs"), metrics.WithUnit("1")),
		swaps: p.Counter("sortvis_swaps_total",
			metrics.WithDescription("in-place exchanges across all runs"), metrics.WithUnit("1")),
		runsCompleted: p.Counter("sortvis_runs_completed_total",
			metrics.WithDescription("runs that finished their sort")),
		runsCancelled: p.Counter("sortvis_runs_cancelled_total",
			metrics.WithDescription("runs terminated by cancellation")),
		activeRuns: p.UpDownCounter("sortvis_active_runs",
			metrics.WithDescription("runs currently executing (0 or 1)")),
		runDuration: p.Histogram("sortvis_run_duration_seconds",
			metrics.WithDescription("wall-clock duration of completed runs"), metrics.WithUnit("seconds")),
	}
}
