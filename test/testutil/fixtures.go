package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/superawesome/blog/internal/domain/events"
	"github.com/superawesome/blog/internal/domain/post"
)

// FixedTime is the clock used by test fixtures
var FixedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// FixedClock returns FixedTime
func FixedClock() time.Time {
	return FixedTime
}

// CreateTestPost creates a post with a fixed clock and runs build against it.
// The resulting events are left uncommitted.
func CreateTestPost(t *testing.T, id string, build func(p *post.Post)) *post.Post {
	t.Helper()

	p, err := post.Create(id, post.WithClock(FixedClock))
	require.NoError(t, err)
	if build != nil {
		build(p)
	}
	return p
}

// PostHistory returns the event stream a test post produced
func PostHistory(t *testing.T, id string, build func(p *post.Post)) []events.Event {
	t.Helper()
	return CreateTestPost(t, id, build).UncommittedEvents()
}

// PublishedHistory returns the stream of a post published once with the given category
func PublishedHistory(t *testing.T, id, category string, tags ...string) []events.Event {
	t.Helper()
	return PostHistory(t, id, func(p *post.Post) {
		require.NoError(t, p.Publish("Title", "Content", category))
		for _, tag := range tags {
			require.NoError(t, p.AddTag(tag))
		}
	})
}

// TaggedEvent returns a Tagged event at the given stream position
func TaggedEvent(id string, version int, tag string) events.Event {
	base := events.NewBaseEvent(id, post.AggregateType, post.EventTypeTagged, version, FixedTime)
	return post.NewTagged(base, tag)
}
