package sortvis

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ygrebnov/errorc"
)

// Engine owns the dataset, the run state machine and the pacing plumbing.
// It guarantees at most one running run at a time; the guarantee is a
// single atomic boolean checked before any mutation, not a queue, so
// concurrent Start attempts beyond the first are dropped.
// Methods are safe for concurrent use.
type Engine struct {
	// noCopy prevents accidental copying of the controller.
	//go:nocopy
	nc noCopy

	config *config

	em  *emitter
	pc  *pacer
	ins *instruments

	baseCtx context.Context

	closeOnce sync.Once
	closed    atomic.Bool

	// single-flight guard for the core exclusivity invariant
	active atomic.Bool

	mu     sync.Mutex // guards values, rng and cur
	values []int
	rng    *rand.Rand
	cur    *run // active or most recent run; nil before the first Start
}

// noCopy is a vet-recognized marker to discourage copying types with this
// field embedded. It works with the "-copylocks" analyzer via the presence
// of Lock/Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New creates a new Engine using functional options. ctx is the parent of
// every run context: cancelling it cancels the active run.
func New(ctx context.Context, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var values []int
	if len(cfg.Dataset) > 0 {
		values = append([]int(nil), cfg.Dataset...)
	} else {
		values = permutation(int(cfg.Size), rng)
	}

	em := &emitter{}
	for _, o := range cfg.Observers {
		em.subscribe(o)
	}

	return &Engine{
		config:  &cfg,
		em:      em,
		pc:      newPacer(cfg.Speed),
		ins:     newInstruments(cfg.Metrics),
		baseCtx: ctx,
		values:  values,
		rng:     rng,
	}, nil
}

// Start begins a run of the named algorithm. It returns (true, nil) when
// the run was accepted and (false, nil) when a run is already active or the
// engine is closed: duplicate starts are dropped, not queued. An unknown
// identifier is the only error.
//
// An accepted Start resets all counters and timestamps before driving the
// algorithm on a single goroutine (one cooperative timeline; there is no
// parallel execution of algorithm steps).
func (e *Engine) Start(algorithm Algorithm) (bool, error) {
	proc, ok := algorithms[algorithm]
	if !ok {
		return false, errorc.With(ErrUnknownAlgorithm, errorc.String("algorithm", string(algorithm)))
	}
	if e.closed.Load() {
		return false, nil
	}
	if !e.active.CompareAndSwap(false, true) {
		return false, nil
	}

	e.mu.Lock()
	seq := newSequence(e.values, e.em, e.ins)
	ctx, cancel := context.WithCancel(e.baseCtx)
	r := newRun(algorithm, seq, cancel)
	e.cur = r
	e.mu.Unlock()

	e.ins.activeRuns.Add(1)
	go e.drive(ctx, r, proc)
	return true, nil
}

// drive runs the algorithm to its terminal state on the run goroutine.
func (e *Engine) drive(ctx context.Context, r *run, proc sortProc) {
	defer close(r.done)
	defer e.active.Store(false)
	defer e.ins.activeRuns.Add(-1)
	defer r.cancel()

	st := newStepper(e.em, e.pc)
	if err := proc(ctx, r.seq, st); err != nil {
		// Cancellation observed at a suspension point. The end timestamp
		// was stamped when the cancel request was accepted; markEnded is a
		// no-op then and covers the parent-context path.
		r.markEnded(time.Now())
		r.setState(StateCancelled)
		e.ins.runsCancelled.Add(1)
		e.em.cancelled()
		return
	}

	e.sweep(ctx, st, r.seq.Len())
	r.markEnded(time.Now())
	r.setState(StateCompleted)
	e.ins.runsCompleted.Add(1)
	e.ins.runDuration.Record(r.elapsed().Seconds())
	e.em.done()
}

// sweep is the confirmation pass after a completed sort: every index is
// highlighted once in order, paced like any other step. It is purely
// presentational; a cancel request during the sweep only cuts it short.
func (e *Engine) sweep(ctx context.Context, st *stepper, n int) {
	for i := 0; i < n; i++ {
		err := st.touch(ctx, i)
		st.release(i)
		if err != nil {
			return
		}
	}
}

// Cancel requests cooperative cancellation of the active run. It returns
// false when no run is in the Running state. The request flips the run to
// Cancelling and freezes the duration immediately; the algorithm observes
// the request at its next suspension point and unwinds without completing
// its remaining work. No single swap or write is interrupted mid-flight.
func (e *Engine) Cancel() bool {
	e.mu.Lock()
	r := e.cur
	e.mu.Unlock()
	if r == nil || !r.transition(StateRunning, StateCancelling) {
		return false
	}
	r.markEnded(time.Now())
	r.cancel()
	return true
}

// SetSpeed changes the pace setting. It applies to all subsequent
// suspension delays immediately, including those of the active run.
func (e *Engine) SetSpeed(v float64) error { return e.pc.setSpeed(v) }

// Speed returns the current pace setting.
func (e *Engine) Speed() float64 { return e.pc.speed() }

// SetDataset replaces the dataset. Only valid while no run is active; the
// values must be positive and pairwise distinct. The slice is copied.
func (e *Engine) SetDataset(values []int) error {
	if err := validateDataset(values); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active.Load() {
		return ErrRunActive
	}
	e.values = append([]int(nil), values...)
	return nil
}

// Shuffle randomizes the dataset order in place. Only valid while no run
// is active.
func (e *Engine) Shuffle() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active.Load() {
		return ErrRunActive
	}
	e.rng.Shuffle(len(e.values), func(i, j int) {
		e.values[i], e.values[j] = e.values[j], e.values[i]
	})
	return nil
}

// Subscribe registers an observer for the event stream. Events arrive in
// exact emission order; dispatch happens on the run goroutine, so a slow
// observer throttles the run.
func (e *Engine) Subscribe(o Observer) { e.em.subscribe(o) }

// Values returns a copy of the current element order. During a run it is a
// consistent point-in-time view of the dataset being sorted.
func (e *Engine) Values() []int {
	e.mu.Lock()
	r, values := e.cur, e.values
	e.mu.Unlock()
	// the active run mutates the same backing array the engine holds, but
	// only the Sequence lock makes a mid-run snapshot consistent
	if r != nil && e.active.Load() {
		return r.seq.Values()
	}
	out := make([]int, len(values))
	copy(out, values)
	return out
}

// State returns the lifecycle state of the active or most recent run.
func (e *Engine) State() State {
	e.mu.Lock()
	r := e.cur
	e.mu.Unlock()
	if r == nil {
		return StateIdle
	}
	return r.getState()
}

// Snapshot returns the metrics of the active or most recent run.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	r := e.cur
	e.mu.Unlock()
	if r == nil {
		return Snapshot{State: StateIdle}
	}
	return Snapshot{
		Algorithm:   r.algorithm,
		State:       r.getState(),
		Comparisons: r.seq.Comparisons(),
		Accesses:    r.seq.Accesses(),
		Swaps:       r.seq.Swaps(),
		Elapsed:     r.elapsed(),
	}
}

// Wait blocks until the active run reaches a terminal state. It returns
// immediately when no run is active.
func (e *Engine) Wait() {
	e.mu.Lock()
	r := e.cur
	e.mu.Unlock()
	if r == nil {
		return
	}
	<-r.done
}

// Close cancels any active run, waits for it to unwind, and drops all
// subsequent Start requests. Idempotent and safe for concurrent use.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		e.Cancel()
		e.mu.Lock()
		r := e.cur
		e.mu.Unlock()
		if r != nil {
			<-r.done
		}
	})
}
