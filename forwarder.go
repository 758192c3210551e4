package sortvis

import "sync"

// ChannelObserver adapts the Observer callback to channel consumption.
// Events are delivered on C in exact emission order. Delivery blocks when
// the buffer is full, throttling the run rather than dropping or
// reordering; Close unblocks any pending delivery and stops further sends.
//
// The owner controls the lifecycle: Close does not close C, so a consumer
// can still drain whatever is buffered after the observer stops accepting
// new events.
type ChannelObserver struct {
	ch      chan Event
	closeCh chan struct{}
	once    sync.Once
}

// NewChannelObserver constructs a ChannelObserver with the given buffer.
func NewChannelObserver(buffer uint) *ChannelObserver {
	return &ChannelObserver{
		ch:      make(chan Event, buffer),
		closeCh: make(chan struct{}),
	}
}

// OnEvent implements Observer. It blocks until the event is buffered or
// the observer is closed. Events arriving after Close are dropped.
func (o *ChannelObserver) OnEvent(ev Event) {
	select {
	case <-o.closeCh:
		return
	default:
	}
	select {
	case <-o.closeCh:
	case o.ch <- ev:
	}
}

// C returns the receive side of the event stream.
func (o *ChannelObserver) C() <-chan Event { return o.ch }

// Close stops delivery. Idempotent and safe for concurrent use.
func (o *ChannelObserver) Close() {
	o.once.Do(func() { close(o.closeCh) })
}
