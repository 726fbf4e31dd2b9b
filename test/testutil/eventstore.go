package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/superawesome/blog/internal/domain/events"
)

// MockEventStore is a mock for the event store
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) ReplayEvents(ctx context.Context, aggregateID string) ([]events.Event, error) {
	args := m.Called(ctx, aggregateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]events.Event), args.Error(1)
}

func (m *MockEventStore) Append(ctx context.Context, aggregateID string, expectedVersion int, evts []events.Event) error {
	args := m.Called(ctx, aggregateID, expectedVersion, evts)
	return args.Error(0)
}

// MemoryEventStore keeps streams in memory and enforces expected versions.
type MemoryEventStore struct {
	mu      sync.Mutex
	streams map[string][]events.Event

	// BeforeAppend runs ahead of the version check, outside the lock.
	// Tests use it to simulate a concurrent writer.
	BeforeAppend func(aggregateID string)
}

// NewMemoryEventStore creates an empty store
func NewMemoryEventStore() *MemoryEventStore {
	return &MemoryEventStore{streams: make(map[string][]events.Event)}
}

func (s *MemoryEventStore) ReplayEvents(ctx context.Context, aggregateID string) ([]events.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stream, ok := s.streams[aggregateID]
	if !ok {
		return nil, events.NewEventStoreError("replay", events.ErrStreamNotFound)
	}
	return slices.Clone(stream), nil
}

func (s *MemoryEventStore) Append(ctx context.Context, aggregateID string, expectedVersion int, evts []events.Event) error {
	if hook := s.BeforeAppend; hook != nil {
		hook(aggregateID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.streams[aggregateID]) != expectedVersion {
		return events.NewEventStoreError("append", events.ErrConcurrencyConflict)
	}
	s.streams[aggregateID] = append(s.streams[aggregateID], evts...)
	return nil
}

// Stream returns a copy of the stored events for aggregateID
func (s *MemoryEventStore) Stream(aggregateID string) []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.streams[aggregateID])
}
