package sortvis

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// pacer derives the advisory inter-step delay from the current speed
// setting: max(1ms, 100ms/speed). The speed is re-read on every wait, so a
// SetSpeed call applies to all subsequent delays immediately. The delay is
// throttling for observability, not a deadline.
type pacer struct {
	speedBits atomic.Uint64
}

func newPacer(speed float64) *pacer {
	p := &pacer{}
	p.speedBits.Store(math.Float64bits(speed))
	return p
}

func (p *pacer) setSpeed(v float64) error {
	if math.IsNaN(v) || v <= 0 {
		return ErrInvalidSpeed
	}
	p.speedBits.Store(math.Float64bits(v))
	return nil
}

func (p *pacer) speed() float64 {
	return math.Float64frombits(p.speedBits.Load())
}

func (p *pacer) interval() time.Duration {
	d := time.Duration(float64(100*time.Millisecond) / p.speed())
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}

// wait suspends for one pacing interval. It returns ErrRunCancelled
// (wrapping the context error) when cancellation was requested, either
// before or during the suspension.
func (p *pacer) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRunCancelled, err)
	}
	t := time.NewTimer(p.interval())
	defer t.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrRunCancelled, ctx.Err())
	case <-t.C:
		return nil
	}
}
