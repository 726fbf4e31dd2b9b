package events

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Event is an immutable fact recorded against one aggregate stream.
type Event interface {
	ID() uuid.UUID
	AggregateID() string
	AggregateType() string
	EventType() string
	// Version is the 1-based position of the event in its aggregate stream
	Version() int
	CreatedAt() time.Time
}

// BaseEvent carries the metadata shared by all events. It is embedded by
// concrete event payloads and is never folded into aggregate state.
type BaseEvent struct {
	id            uuid.UUID
	aggregateID   string
	aggregateType string
	eventType     string
	version       int
	createdAt     time.Time
}

// NewBaseEvent creates a new base event
func NewBaseEvent(aggregateID, aggregateType, eventType string, version int, createdAt time.Time) BaseEvent {
	return BaseEvent{
		id:            uuid.New(),
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		eventType:     eventType,
		version:       version,
		createdAt:     createdAt.UTC(),
	}
}

// ID returns the event ID
func (e BaseEvent) ID() uuid.UUID {
	return e.id
}

// AggregateID returns the aggregate ID
func (e BaseEvent) AggregateID() string {
	return e.aggregateID
}

// AggregateType returns the aggregate type
func (e BaseEvent) AggregateType() string {
	return e.aggregateType
}

// EventType returns the event type
func (e BaseEvent) EventType() string {
	return e.eventType
}

// Version returns the stream position of the event
func (e BaseEvent) Version() int {
	return e.version
}

// CreatedAt returns the event creation time
func (e BaseEvent) CreatedAt() time.Time {
	return e.createdAt
}

// IsNil reports whether evt is nil or a nil pointer behind the interface.
func IsNil(evt Event) bool {
	if evt == nil {
		return true
	}
	v := reflect.ValueOf(evt)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// TypeOf returns the event type of evt, or "<nil>" for a missing event.
func TypeOf(evt Event) string {
	if IsNil(evt) {
		return "<nil>"
	}
	return evt.EventType()
}

// Types returns the event types of evts in order.
func Types(evts []Event) []string {
	types := make([]string, len(evts))
	for i, evt := range evts {
		types[i] = TypeOf(evt)
	}
	return types
}
