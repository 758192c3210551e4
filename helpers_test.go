package sortvis

import (
	"context"
	"fmt"
	"sync"
)

// recorder collects events in emission order.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) OnEvent(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// filter returns the recorded events of the given kinds, in order.
func (r *recorder) filter(kinds ...EventKind) []Event {
	want := make(map[EventKind]struct{}, len(kinds))
	for _, k := range kinds {
		want[k] = struct{}{}
	}
	var out []Event
	for _, ev := range r.all() {
		if _, ok := want[ev.Kind]; ok {
			out = append(out, ev)
		}
	}
	return out
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, ev := range r.all() {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// instantPace is a waiter without delay, so algorithm unit tests run at
// full speed while keeping the cancellation check of a real suspension.
type instantPace struct{}

func (instantPace) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRunCancelled, err)
	}
	return nil
}

// newTestRig wires a Sequence over values to a recording observer and an
// instant stepper.
func newTestRig(values []int) (*Sequence, *stepper, *recorder) {
	rec := &recorder{}
	em := &emitter{}
	em.subscribe(rec)
	seq := newSequence(values, em, nil)
	return seq, newStepper(em, instantPace{}), rec
}

func isPermutation(original, current []int) bool {
	if len(original) != len(current) {
		return false
	}
	counts := make(map[int]int, len(original))
	for _, v := range original {
		counts[v]++
	}
	for _, v := range current {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

func isAscending(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			return false
		}
	}
	return true
}
