package sortvis

// EventKind enumerates the instrumentation events an algorithm emits while
// it works. Compare/Swap/Overwrite double as tone triggers: they carry the
// values touched so an observer can map values to pitch.
type EventKind int

const (
	// Compare reports one comparison. V and W are the operand values;
	// I and J are the operand indices when the operands live in the
	// sequence (-1 for operands held outside it).
	Compare EventKind = iota

	// Swap reports an in-place exchange of indices I and J. V and W are
	// the values at I and J after the exchange.
	Swap

	// Overwrite reports a single write of value V to index I.
	Overwrite

	// HighlightOn marks index I as about to be compared or moved. It is
	// always emitted before the pacing suspension preceding the touch.
	HighlightOn

	// HighlightOff clears the mark on index I once the touch completed.
	HighlightOff

	// Done is the terminal event of a run that completed normally,
	// emitted after the confirmation sweep.
	Done

	// Cancelled is the terminal event of a cancelled run. No further
	// events follow it.
	Cancelled
)

// String returns a short stable name for the kind.
func (k EventKind) String() string {
	switch k {
	case Compare:
		return "compare"
	case Swap:
		return "swap"
	case Overwrite:
		return "overwrite"
	case HighlightOn:
		return "highlight_on"
	case HighlightOff:
		return "highlight_off"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Event is an immutable record of one observable step. Indices are -1 and
// values are 0 when a field does not apply to the kind. The engine does not
// retain events beyond dispatch; retention is the observer's concern.
type Event struct {
	Kind EventKind
	I, J int
	V, W int
}

// Observer receives the event stream of a run in exact emission order.
// Implementations must tolerate arbitrarily fast event rates at high speed
// settings; a slow OnEvent throttles the run.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Event)

// OnEvent calls f(ev).
func (f ObserverFunc) OnEvent(ev Event) { f(ev) }
