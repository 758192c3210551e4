// Package sortvis executes classic comparison- and distribution-based
// sorting algorithms over a small integer dataset while emitting a
// deterministic, throttleable stream of instrumentation events
// (comparisons, swaps, overwrites, highlights, completion) for an external
// presentation layer such as a renderer or audio synthesizer.
//
// Constructors
//   - New(ctx, opts...): options-based Engine constructor. ctx is the
//     parent of every run context.
//   - Run(ctx, algorithm, values, opts...): one-shot helper that owns the
//     Engine lifecycle and blocks until the run is terminal.
//
// Defaults
// Unless overridden, a newly created Engine uses:
//   - Dataset: a shuffled permutation of 1..32
//   - Speed: 1 (100ms per observable step)
//   - Metrics: a no-op provider
//
// Event stream
// Algorithms report every comparison, swap and overwrite through the
// instrumented Sequence, and mark every index they are about to touch with
// HighlightOn before the pacing suspension and HighlightOff right after
// the operation. Observers receive events in exact emission order; the
// engine never reorders or batches them. Done and Cancelled are terminal;
// no event follows Cancelled.
//
// Concurrency
// At most one run executes at a time, enforced by a single boolean guard:
// Start requests while a run is active are dropped, not queued. All
// algorithm steps execute on one goroutine (a single cooperative
// timeline). Cancellation is cooperative and non-preemptive: the request
// sets a flag that the algorithm observes at its next suspension point,
// and no single swap or write is ever interrupted mid-flight.
package sortvis
