package sortvis

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// State enumerates the run lifecycle. Terminal states re-enter Running
// implicitly on the next accepted Start.
type State int32

const (
	// StateIdle means no run has been started yet.
	StateIdle State = iota
	// StateRunning means an algorithm is being driven.
	StateRunning
	// StateCancelling means cancellation was requested and the algorithm
	// has not yet observed it at a suspension point.
	StateCancelling
	// StateCompleted means the last run finished its sort.
	StateCompleted
	// StateCancelled means the last run unwound after a cancel request.
	StateCancelled
)

// String returns a short stable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCancelling:
		return "cancelling"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time view of the active or most recently
// completed run.
type Snapshot struct {
	Algorithm   Algorithm
	State       State
	Comparisons uint64
	Accesses    uint64
	Swaps       uint64

	// Elapsed is end-start for a terminal run and now-start while
	// running. Cancellation freezes it at the moment the cancel request
	// was accepted, not when the algorithm finished unwinding.
	Elapsed time.Duration
}

// run is one execution of one algorithm. It is created by an accepted
// Start and superseded by the next one; the engine holds at most one
// non-terminal run at a time.
type run struct {
	algorithm Algorithm
	seq       *Sequence
	cancel    context.CancelFunc
	done      chan struct{}

	state   atomic.Int32
	started time.Time

	mu    sync.Mutex
	ended time.Time
}

func newRun(algorithm Algorithm, seq *Sequence, cancel context.CancelFunc) *run {
	r := &run{
		algorithm: algorithm,
		seq:       seq,
		cancel:    cancel,
		done:      make(chan struct{}),
		started:   time.Now(),
	}
	r.state.Store(int32(StateRunning))
	return r
}

func (r *run) getState() State { return State(r.state.Load()) }

func (r *run) setState(s State) { r.state.Store(int32(s)) }

func (r *run) transition(from, to State) bool {
	return r.state.CompareAndSwap(int32(from), int32(to))
}

// markEnded stamps the end timestamp once; later stamps are ignored, so a
// cancel-time stamp wins over the unwind-time one.
func (r *run) markEnded(t time.Time) {
	r.mu.Lock()
	if r.ended.IsZero() {
		r.ended = t
	}
	r.mu.Unlock()
}

func (r *run) elapsed() time.Duration {
	r.mu.Lock()
	ended := r.ended
	r.mu.Unlock()
	if ended.IsZero() {
		return time.Since(r.started)
	}
	return ended.Sub(r.started)
}

// Run executes a single algorithm over values and blocks until the run
// reaches a terminal state. It owns the Engine lifecycle: construct, start,
// wait, close. On cancellation (via ctx) it returns ErrRunCancelled along
// with the dataset as the algorithm left it.
func Run(ctx context.Context, algorithm Algorithm, values []int, opts ...Option) ([]int, Snapshot, error) {
	opts = append(opts, WithDataset(values))
	e, err := New(ctx, opts...)
	if err != nil {
		return nil, Snapshot{}, err
	}
	defer e.Close()

	if _, err := e.Start(algorithm); err != nil {
		return nil, Snapshot{}, err
	}
	e.Wait()

	snap := e.Snapshot()
	if snap.State == StateCancelled {
		return e.Values(), snap, ErrRunCancelled
	}
	return e.Values(), snap, nil
}
