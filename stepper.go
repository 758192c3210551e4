package sortvis

import "context"

// waiter is the pacing dependency of stepper. pacer is the production
// implementation; tests substitute an immediate one.
type waiter interface {
	wait(ctx context.Context) error
}

// stepper implements the suspension protocol shared by all algorithms.
// touch marks every index about to be compared or moved and then pauses at
// the pacing suspension point, so observers always see "about to touch"
// before "touched"; release clears the marks once the operation completed.
// touch returns ErrRunCancelled the first time cancellation is observed,
// and the algorithm unwinds without completing its remaining work.
type stepper struct {
	em   *emitter
	pace waiter
}

func newStepper(em *emitter, pace waiter) *stepper {
	return &stepper{em: em, pace: pace}
}

func (st *stepper) touch(ctx context.Context, indices ...int) error {
	st.em.highlightOn(indices...)
	return st.pace.wait(ctx)
}

func (st *stepper) release(indices ...int) {
	st.em.highlightOff(indices...)
}
