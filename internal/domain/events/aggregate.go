package events

import (
	"fmt"
)

// Applier is the contract an aggregate exposes for folding one event into
// its state. Implementations must be pure: no I/O, no further events, and
// the input state must be left untouched.
type Applier[S any] func(state S, evt Event) (S, error)

// Fold applies history to state in order and stops at the first failure.
// The returned error identifies the position and type of the rejected event.
func Fold[S any](state S, history []Event, apply Applier[S]) (S, error) {
	for i, evt := range history {
		next, err := apply(state, evt)
		if err != nil {
			return state, fmt.Errorf("fold event %d (%s): %w", i+1, TypeOf(evt), err)
		}
		state = next
	}
	return state, nil
}

// AggregateRoot tracks the bookkeeping every event-sourced aggregate needs:
// how many events have been folded in and which of them are not yet persisted.
type AggregateRoot struct {
	version     int
	uncommitted []Event
}

// Version returns the number of events folded into the aggregate.
func (r *AggregateRoot) Version() int {
	return r.version
}

// NextVersion returns the stream position the next recorded event takes.
func (r *AggregateRoot) NextVersion() int {
	return r.version + 1
}

// Replayed accounts for n events folded in from history.
func (r *AggregateRoot) Replayed(n int) {
	r.version += n
}

// Track records newly produced events in emission order.
func (r *AggregateRoot) Track(evts ...Event) {
	r.uncommitted = append(r.uncommitted, evts...)
	r.version += len(evts)
}

// UncommittedEvents returns a copy of the events not yet handed to the store.
func (r *AggregateRoot) UncommittedEvents() []Event {
	out := make([]Event, len(r.uncommitted))
	copy(out, r.uncommitted)
	return out
}

// HasUncommittedEvents reports whether any events await persistence.
func (r *AggregateRoot) HasUncommittedEvents() bool {
	return len(r.uncommitted) > 0
}

// ClearUncommittedEvents drops the pending events after a successful append.
func (r *AggregateRoot) ClearUncommittedEvents() {
	r.uncommitted = nil
}

// PersistedVersion is the stream version the store holds, i.e. the expected
// version for appending the uncommitted events.
func (r *AggregateRoot) PersistedVersion() int {
	return r.version - len(r.uncommitted)
}
