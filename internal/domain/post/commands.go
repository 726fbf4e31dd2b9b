package post

import (
	"strings"

	"github.com/superawesome/blog/internal/domain/events"
)

// Publish publishes the post with the given title, content and category.
// An empty category leaves the post uncategorized.
func (p *Post) Publish(title, content, category string) error {
	if err := p.mustBeCreated(); err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return p.record(decidePublish(p.state, p.policy, p.stamper(), title, content, category))
}

// AddTag adds tag to the post.
func (p *Post) AddTag(tag string) error {
	if err := p.mustBeCreated(); err != nil {
		return err
	}
	if strings.TrimSpace(tag) == "" {
		return ErrEmptyTag
	}
	return p.record(decideAddTag(p.state, p.policy, p.stamper(), tag))
}

// RemoveTag removes tag from the post.
func (p *Post) RemoveTag(tag string) error {
	if err := p.mustBeCreated(); err != nil {
		return err
	}
	if strings.TrimSpace(tag) == "" {
		return ErrEmptyTag
	}
	return p.record(decideRemoveTag(p.state, p.policy, p.stamper(), tag))
}

func (p *Post) mustBeCreated() error {
	if p.state.ID == "" {
		return ErrNotCreated
	}
	return nil
}

func decidePublish(state State, policy Policy, stamp func(string) events.BaseEvent, title, content, category string) []events.Event {
	if policy.IdempotentPublish &&
		state.Title == title &&
		state.Content == content &&
		state.Category == category {
		return nil
	}

	var out []events.Event
	if state.Category != category {
		if state.Category != "" {
			out = append(out, NewUncategorized(stamp(EventTypeUncategorized), state.Category))
		}
		if category != "" {
			out = append(out, NewCategorized(stamp(EventTypeCategorized), category))
		}
	}
	return append(out, NewPublished(stamp(EventTypePublished), title, content, category))
}

func decideAddTag(state State, policy Policy, stamp func(string) events.BaseEvent, tag string) []events.Event {
	if _, ok := state.Tags[tag]; ok && policy.IdempotentTag {
		return nil
	}
	return []events.Event{NewTagged(stamp(EventTypeTagged), tag)}
}

func decideRemoveTag(state State, policy Policy, stamp func(string) events.BaseEvent, tag string) []events.Event {
	if _, ok := state.Tags[tag]; !ok && policy.IdempotentUntag {
		return nil
	}
	return []events.Event{NewUntagged(stamp(EventTypeUntagged), tag)}
}
