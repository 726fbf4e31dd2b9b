// Package post implements the event-sourced post aggregate: a publishable,
// categorizable and taggable content item whose state is only ever derived by
// folding its own events.
package post

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/superawesome/blog/internal/domain/events"
)

// Status is the lifecycle stage of a post
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// State is the folded value of a post stream.
// An empty Category means the post is not categorized.
type State struct {
	ID       string
	Title    string
	Content  string
	Category string
	Tags     map[string]struct{}
	Status   Status
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	if s.Tags != nil {
		s.Tags = cloneTags(s.Tags)
	}
	return s
}

// Post is the post aggregate root.
type Post struct {
	root   events.AggregateRoot
	state  State
	policy Policy
	now    func() time.Time
}

// Option configures a Post
type Option func(*Post)

// WithPolicy selects the command guard semantics.
func WithPolicy(policy Policy) Option {
	return func(p *Post) {
		p.policy = policy
	}
}

// WithClock sets the clock used to stamp new events.
func WithClock(now func() time.Time) Option {
	return func(p *Post) {
		if now != nil {
			p.now = now
		}
	}
}

// InstantiateEmpty returns a post with no identity. It exists for replay only;
// every command fails with ErrNotCreated until a Created event is folded in.
func InstantiateEmpty(opts ...Option) *Post {
	p := &Post{
		policy: DefaultPolicy(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Create starts a new post and records its Created event.
func Create(id string, opts ...Option) (*Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}

	p := InstantiateEmpty(opts...)
	base := events.NewBaseEvent(id, AggregateType, EventTypeCreated, p.root.NextVersion(), p.now())
	if err := p.record([]events.Event{NewCreated(base)}); err != nil {
		return nil, err
	}
	return p, nil
}

// Reconstitute rebuilds a post by folding history over an empty instance.
func Reconstitute(history []events.Event, opts ...Option) (*Post, error) {
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}

	p := InstantiateEmpty(opts...)
	if err := p.Replay(history); err != nil {
		return nil, err
	}
	return p, nil
}

// Replay folds already persisted events onto the post. They are not tracked
// as uncommitted.
func (p *Post) Replay(history []events.Event) error {
	state, err := events.Fold(p.state, history, sequenced(p.root.NextVersion()))
	if err != nil {
		return err
	}
	p.state = state
	p.root.Replayed(len(history))
	return nil
}

// record applies newly decided events to a scratch state and commits state
// and uncommitted events together, or nothing at all.
func (p *Post) record(evts []events.Event) error {
	if len(evts) == 0 {
		return nil
	}
	state, err := events.Fold(p.state, evts, sequenced(p.root.NextVersion()))
	if err != nil {
		return err
	}
	p.state = state
	p.root.Track(evts...)
	return nil
}

// stamper returns a generator of event metadata for consecutive stream positions.
func (p *Post) stamper() func(eventType string) events.BaseEvent {
	id, next, at := p.state.ID, p.root.NextVersion(), p.now()
	return func(eventType string) events.BaseEvent {
		base := events.NewBaseEvent(id, AggregateType, eventType, next, at)
		next++
		return base
	}
}

// ID returns the post id, empty before creation has been folded in.
func (p *Post) ID() string {
	return p.state.ID
}

// Title returns the published title
func (p *Post) Title() string {
	return p.state.Title
}

// Content returns the published body
func (p *Post) Content() string {
	return p.state.Content
}

// Category returns the current category, or "" when uncategorized
func (p *Post) Category() string {
	return p.state.Category
}

// HasCategory reports whether the post is categorized
func (p *Post) HasCategory() bool {
	return p.state.Category != ""
}

// Tags returns the tag set in sorted order
func (p *Post) Tags() []string {
	return slices.Sorted(maps.Keys(p.state.Tags))
}

// HasTag reports whether tag is in the tag set
func (p *Post) HasTag(tag string) bool {
	_, ok := p.state.Tags[tag]
	return ok
}

// Status returns the lifecycle status
func (p *Post) Status() Status {
	return p.state.Status
}

// State returns a copy of the folded state
func (p *Post) State() State {
	return p.state.Clone()
}

// Policy returns the command guard semantics in effect
func (p *Post) Policy() Policy {
	return p.policy
}

// Version returns the number of events folded into the post
func (p *Post) Version() int {
	return p.root.Version()
}

// PersistedVersion returns the stream version the uncommitted events must be appended at
func (p *Post) PersistedVersion() int {
	return p.root.PersistedVersion()
}

// UncommittedEvents returns the events produced since the last clear, in emission order
func (p *Post) UncommittedEvents() []events.Event {
	return p.root.UncommittedEvents()
}

// HasUncommittedEvents reports whether any events await persistence
func (p *Post) HasUncommittedEvents() bool {
	return p.root.HasUncommittedEvents()
}

// ClearUncommittedEvents drops the pending events once the store accepted them
func (p *Post) ClearUncommittedEvents() {
	p.root.ClearUncommittedEvents()
}
