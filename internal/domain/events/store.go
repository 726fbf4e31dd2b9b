package events

import (
	"context"

	apperrors "github.com/superawesome/blog/pkg/errors"
)

var (
	// ErrStreamNotFound is returned by ReplayEvents for an aggregate with no history
	ErrStreamNotFound = apperrors.NotFound("event stream not found")

	// ErrConcurrencyConflict is returned by Append when the stream moved past the expected version
	ErrConcurrencyConflict = apperrors.Conflict("event stream version conflict")
)

// EventStore is the external collaborator that owns durable, ordered event
// streams. Aggregates never call it; application services do.
type EventStore interface {
	// ReplayEvents returns the full history of an aggregate in stream order.
	ReplayEvents(ctx context.Context, aggregateID string) ([]Event, error)

	// Append adds evts to the stream of aggregateID if the stream is still at
	// expectedVersion, otherwise it fails with ErrConcurrencyConflict.
	// Either all events are appended or none are.
	Append(ctx context.Context, aggregateID string, expectedVersion int, evts []Event) error
}

// EventStoreError represents an error that occurred in the event store
type EventStoreError struct {
	Op  string
	Err error
}

// Error returns the string representation of the error
func (e *EventStoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *EventStoreError) Unwrap() error {
	return e.Err
}

// NewEventStoreError creates a new event store error
func NewEventStoreError(op string, err error) error {
	return &EventStoreError{
		Op:  op,
		Err: err,
	}
}
