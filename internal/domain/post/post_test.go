package post_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/superawesome/blog/internal/domain/events"
	"github.com/superawesome/blog/internal/domain/post"
	apperrors "github.com/superawesome/blog/pkg/errors"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type PostTestSuite struct {
	suite.Suite
}

func TestPostTestSuite(t *testing.T) {
	suite.Run(t, new(PostTestSuite))
}

// published returns a committed post with the given values, as if replayed from the store.
func (s *PostTestSuite) published(id, title, content, category string, tags ...string) *post.Post {
	p, err := post.Create(id, post.WithClock(clock))
	s.Require().NoError(err)
	s.Require().NoError(p.Publish(title, content, category))
	for _, tag := range tags {
		s.Require().NoError(p.AddTag(tag))
	}
	p.ClearUncommittedEvents()
	return p
}

func (s *PostTestSuite) TestCreate_RecordsCreatedEvent() {
	p, err := post.Create("p1", post.WithClock(clock))
	s.Require().NoError(err)

	uncommitted := p.UncommittedEvents()
	s.Require().Len(uncommitted, 1)
	created, ok := uncommitted[0].(*post.Created)
	s.Require().True(ok)
	s.Equal("p1", created.AggregateID())
	s.Equal(post.AggregateType, created.AggregateType())
	s.Equal(post.EventTypeCreated, created.EventType())
	s.Equal(1, created.Version())
	s.Equal(fixedNow, created.CreatedAt())
	s.Equal(1, p.Version())
	s.Equal(0, p.PersistedVersion())
}

func (s *PostTestSuite) TestCreate_ReplayYieldsEmptyPost() {
	p, err := post.Create("p1")
	s.Require().NoError(err)

	replayed, err := post.Reconstitute(p.UncommittedEvents())
	s.Require().NoError(err)

	s.Equal("p1", replayed.ID())
	s.Empty(replayed.Title())
	s.Empty(replayed.Content())
	s.Empty(replayed.Category())
	s.False(replayed.HasCategory())
	s.Empty(replayed.Tags())
	s.Equal(post.StatusDraft, replayed.Status())
	s.False(replayed.HasUncommittedEvents())
	s.Equal(1, replayed.Version())
}

func (s *PostTestSuite) TestCreate_RejectsEmptyID() {
	for _, id := range []string{"", "   "} {
		p, err := post.Create(id)
		s.Nil(p)
		s.ErrorIs(err, post.ErrEmptyID)
		s.True(apperrors.IsInvalidArgument(err))
	}
}

func (s *PostTestSuite) TestPublish_NoChangeIsNoop() {
	p := s.published("p1", "T", "C", "cat")
	before := p.State()

	s.Require().NoError(p.Publish("T", "C", "cat"))

	s.Empty(p.UncommittedEvents())
	s.Equal(before, p.State())
}

func (s *PostTestSuite) TestPublish_CategoryTransition() {
	p := s.published("p1", "T", "C", "news")
	prior, err := post.Reconstitute(s.history(p))
	s.Require().NoError(err)

	s.Require().NoError(p.Publish("T2", "C2", "tech"))

	emitted := p.UncommittedEvents()
	s.Require().Len(emitted, 3)
	s.Equal([]string{post.EventTypeUncategorized, post.EventTypeCategorized, post.EventTypePublished}, events.Types(emitted))
	s.Equal("news", emitted[0].(*post.Uncategorized).Category)
	s.Equal("tech", emitted[1].(*post.Categorized).Category)
	published := emitted[2].(*post.Published)
	s.Equal("T2", published.Title)
	s.Equal("C2", published.Content)
	s.Equal("tech", published.Category)

	s.Require().NoError(prior.Replay(emitted))
	s.Equal("tech", prior.Category())
	s.Equal("T2", prior.Title())
	s.Equal("C2", prior.Content())
	s.Equal(p.State(), prior.State())
}

func (s *PostTestSuite) TestPublish_FirstPublishHasNoUncategorized() {
	p, err := post.Create("p1")
	s.Require().NoError(err)
	p.ClearUncommittedEvents()

	s.Require().NoError(p.Publish("T", "C", "sports"))

	emitted := p.UncommittedEvents()
	s.Equal([]string{post.EventTypeCategorized, post.EventTypePublished}, events.Types(emitted))
	s.Equal("sports", emitted[0].(*post.Categorized).Category)
	s.Equal(post.StatusPublished, p.Status())
	s.Equal(2, emitted[0].Version())
	s.Equal(3, emitted[1].Version())
}

func (s *PostTestSuite) TestPublish_SameCategoryOnlyPublishes() {
	p := s.published("p1", "T", "C", "news")

	s.Require().NoError(p.Publish("T", "C edited", "news"))

	s.Equal([]string{post.EventTypePublished}, events.Types(p.UncommittedEvents()))
	s.Equal("C edited", p.Content())
}

func (s *PostTestSuite) TestPublish_DroppingCategory() {
	p := s.published("p1", "T", "C", "news")

	s.Require().NoError(p.Publish("T", "C", ""))

	s.Equal([]string{post.EventTypeUncategorized, post.EventTypePublished}, events.Types(p.UncommittedEvents()))
	s.False(p.HasCategory())
}

func (s *PostTestSuite) TestPublish_Unguarded() {
	p, err := post.Create("p1", post.WithPolicy(post.UnguardedPolicy()))
	s.Require().NoError(err)
	s.Require().NoError(p.Publish("T", "C", "cat"))
	p.ClearUncommittedEvents()

	s.Require().NoError(p.Publish("T", "C", "cat"))

	s.Equal([]string{post.EventTypePublished}, events.Types(p.UncommittedEvents()))
}

func (s *PostTestSuite) TestPublish_Validation() {
	p := s.published("p1", "T", "C", "cat")

	err := p.Publish(" ", "C", "cat")
	s.ErrorIs(err, post.ErrEmptyTitle)
	s.True(apperrors.IsInvalidArgument(err))

	err = p.Publish("T", "", "cat")
	s.ErrorIs(err, post.ErrEmptyContent)

	s.Empty(p.UncommittedEvents())
	s.Equal("T", p.Title())
}

func (s *PostTestSuite) TestAddTag_Idempotent() {
	p := s.published("p1", "T", "C", "cat", "x")

	s.Require().NoError(p.AddTag("x"))

	s.Empty(p.UncommittedEvents())
	s.Equal([]string{"x"}, p.Tags())
}

func (s *PostTestSuite) TestAddTag_UnguardedStillKeepsSetSemantics() {
	p, err := post.Create("p1", post.WithPolicy(post.UnguardedPolicy()))
	s.Require().NoError(err)

	s.Require().NoError(p.AddTag("x"))
	s.Require().NoError(p.AddTag("x"))

	s.Equal([]string{post.EventTypeCreated, post.EventTypeTagged, post.EventTypeTagged}, events.Types(p.UncommittedEvents()))
	s.Equal([]string{"x"}, p.Tags())

	replayed, err := post.Reconstitute(p.UncommittedEvents())
	s.Require().NoError(err)
	s.Equal([]string{"x"}, replayed.Tags())
}

func (s *PostTestSuite) TestTag_RoundTrip() {
	p, err := post.Create("p1")
	s.Require().NoError(err)
	s.Require().NoError(p.AddTag("x"))

	replayed, err := post.Reconstitute(p.UncommittedEvents())
	s.Require().NoError(err)
	s.True(replayed.HasTag("x"))

	s.Require().NoError(replayed.RemoveTag("x"))
	s.Equal([]string{post.EventTypeUntagged}, events.Types(replayed.UncommittedEvents()))

	final, err := post.Reconstitute(append(p.UncommittedEvents(), replayed.UncommittedEvents()...))
	s.Require().NoError(err)
	s.False(final.HasTag("x"))
	s.Empty(final.Tags())
}

func (s *PostTestSuite) TestRemoveTag_AbsentGuarded() {
	p := s.published("p1", "T", "C", "cat", "x")

	s.Require().NoError(p.RemoveTag("y"))

	s.Empty(p.UncommittedEvents())
	s.Equal([]string{"x"}, p.Tags())
}

func (s *PostTestSuite) TestRemoveTag_AbsentUnguarded() {
	p, err := post.Create("p1", post.WithPolicy(post.UnguardedPolicy()))
	s.Require().NoError(err)
	p.ClearUncommittedEvents()

	s.Require().NoError(p.RemoveTag("y"))

	emitted := p.UncommittedEvents()
	s.Require().Len(emitted, 1)
	s.Equal("y", emitted[0].(*post.Untagged).Tag)
	s.Empty(p.Tags())
}

func (s *PostTestSuite) TestTags_RejectBlank() {
	p := s.published("p1", "T", "C", "cat")

	s.ErrorIs(p.AddTag(""), post.ErrEmptyTag)
	s.ErrorIs(p.RemoveTag("  "), post.ErrEmptyTag)
	s.Empty(p.UncommittedEvents())
}

func (s *PostTestSuite) TestCommands_BeforeCreationAreRejected() {
	p := post.InstantiateEmpty()

	for _, err := range []error{
		p.Publish("T", "C", "cat"),
		p.AddTag("x"),
		p.RemoveTag("x"),
	} {
		s.ErrorIs(err, post.ErrNotCreated)
		s.True(apperrors.IsReplayOrderViolation(err))
	}
	s.Empty(p.UncommittedEvents())
	s.Empty(p.ID())
}

func (s *PostTestSuite) TestReplay_IsDeterministic() {
	p, err := post.Create("p1")
	s.Require().NoError(err)
	s.Require().NoError(p.Publish("T", "C", "news"))
	s.Require().NoError(p.AddTag("a"))
	s.Require().NoError(p.AddTag("b"))
	s.Require().NoError(p.Publish("T2", "C2", "tech"))
	s.Require().NoError(p.RemoveTag("a"))
	history := p.UncommittedEvents()

	first, err := post.Reconstitute(history)
	s.Require().NoError(err)
	second, err := post.Reconstitute(history)
	s.Require().NoError(err)

	s.Equal(first.State(), second.State())
	s.Equal(p.State(), first.State())
	s.Equal(len(history), first.Version())
	s.Equal([]string{"b"}, first.Tags())
	s.Equal("tech", first.Category())
}

func (s *PostTestSuite) TestReconstitute_RejectsEmptyHistory() {
	p, err := post.Reconstitute(nil)
	s.Nil(p)
	s.ErrorIs(err, post.ErrEmptyHistory)
}

func (s *PostTestSuite) TestReconstitute_RejectsOutOfOrderHistory() {
	p, err := post.Create("p1")
	s.Require().NoError(err)
	s.Require().NoError(p.AddTag("x"))
	history := p.UncommittedEvents()

	_, err = post.Reconstitute([]events.Event{history[1], history[0]})
	s.True(apperrors.IsReplayOrderViolation(err))
}

func (s *PostTestSuite) TestReconstitute_RejectsMissingEvents() {
	p, err := post.Create("p1")
	s.Require().NoError(err)
	created := p.UncommittedEvents()[0]

	for name, missing := range map[string]events.Event{
		"nil":       nil,
		"nil typed": (*post.Tagged)(nil),
	} {
		s.Run(name, func() {
			var err error
			s.NotPanics(func() {
				_, err = post.Reconstitute([]events.Event{created, missing})
			})
			s.ErrorIs(err, post.ErrUnknownEvent)
			s.True(apperrors.IsReplayOrderViolation(err))
		})
	}
}

func (s *PostTestSuite) TestUncommittedEvents_ClearKeepsVersion() {
	p := s.published("p1", "T", "C", "cat")
	s.Equal(3, p.Version())
	s.Equal(3, p.PersistedVersion())

	s.Require().NoError(p.AddTag("x"))
	s.Equal(4, p.Version())
	s.Equal(3, p.PersistedVersion())
	s.True(p.HasUncommittedEvents())

	p.ClearUncommittedEvents()
	s.False(p.HasUncommittedEvents())
	s.Equal(4, p.PersistedVersion())
}

func (s *PostTestSuite) history(p *post.Post) []events.Event {
	// Commands on a fresh copy reproduce the same committed history.
	fresh, err := post.Create(p.ID(), post.WithClock(clock))
	s.Require().NoError(err)
	s.Require().NoError(fresh.Publish(p.Title(), p.Content(), p.Category()))
	for _, tag := range p.Tags() {
		s.Require().NoError(fresh.AddTag(tag))
	}
	return fresh.UncommittedEvents()
}

func TestPolicies(t *testing.T) {
	assert.Equal(t, post.Policy{IdempotentPublish: true, IdempotentTag: true, IdempotentUntag: true}, post.DefaultPolicy())
	assert.Equal(t, post.Policy{}, post.UnguardedPolicy())

	p := post.InstantiateEmpty()
	require.Equal(t, post.DefaultPolicy(), p.Policy())
}
