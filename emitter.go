package sortvis

import "sync"

// emitter fans events out to subscribed observers. Dispatch is synchronous
// on the run goroutine, which is what guarantees emission order: the engine
// never reorders or batches events. Subscription is safe for concurrent use.
type emitter struct {
	mu        sync.RWMutex
	observers []Observer
}

func (e *emitter) subscribe(o Observer) {
	if o == nil {
		return
	}
	e.mu.Lock()
	e.observers = append(e.observers, o)
	e.mu.Unlock()
}

func (e *emitter) emit(ev Event) {
	e.mu.RLock()
	obs := e.observers
	e.mu.RUnlock()
	for _, o := range obs {
		o.OnEvent(ev)
	}
}

func (e *emitter) compare(i, j, v, w int) { e.emit(Event{Kind: Compare, I: i, J: j, V: v, W: w}) }

func (e *emitter) swap(i, j, v, w int) { e.emit(Event{Kind: Swap, I: i, J: j, V: v, W: w}) }

func (e *emitter) overwrite(i, v int) { e.emit(Event{Kind: Overwrite, I: i, J: -1, V: v}) }

func (e *emitter) highlightOn(indices ...int) {
	for _, i := range indices {
		e.emit(Event{Kind: HighlightOn, I: i, J: -1})
	}
}

func (e *emitter) highlightOff(indices ...int) {
	for _, i := range indices {
		e.emit(Event{Kind: HighlightOff, I: i, J: -1})
	}
}

func (e *emitter) done() { e.emit(Event{Kind: Done, I: -1, J: -1}) }

func (e *emitter) cancelled() { e.emit(Event{Kind: Cancelled, I: -1, J: -1}) }
