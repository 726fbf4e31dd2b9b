package post

import (
	"fmt"

	"github.com/superawesome/blog/internal/domain/events"
)

// Apply folds one event into state and returns the next state.
//
// Apply is the only place post state changes, for live commands and for
// replay alike. It is pure: the input state, including its tag set, is never
// modified.
func Apply(state State, evt events.Event) (State, error) {
	if events.IsNil(evt) {
		return state, ErrUnknownEvent
	}

	if _, ok := evt.(*Created); !ok {
		if state.ID == "" {
			return state, ErrNotCreated
		}
		if evt.AggregateID() != state.ID {
			return state, fmt.Errorf("%w: %s", ErrForeignEvent, evt.AggregateID())
		}
	}

	switch e := evt.(type) {
	case *Created:
		if state.ID != "" {
			return state, ErrAlreadyCreated
		}
		if e.AggregateID() == "" {
			return state, ErrEmptyID
		}
		return State{ID: e.AggregateID(), Status: StatusDraft}, nil

	case *Categorized:
		state.Category = e.Category

	case *Uncategorized:
		if state.Category == e.Category {
			state.Category = ""
		}

	case *Published:
		state.Title = e.Title
		state.Content = e.Content
		state.Category = e.Category
		state.Status = StatusPublished

	case *Tagged:
		if _, ok := state.Tags[e.Tag]; !ok {
			state.Tags = cloneTags(state.Tags)
			state.Tags[e.Tag] = struct{}{}
		}

	case *Untagged:
		if _, ok := state.Tags[e.Tag]; ok {
			state.Tags = cloneTags(state.Tags)
			delete(state.Tags, e.Tag)
		}

	default:
		return state, fmt.Errorf("%w: %T", ErrUnknownEvent, evt)
	}

	return state, nil
}

// sequenced wraps Apply with a stream position check starting at next.
// Events without a version (0) are accepted as-is.
func sequenced(next int) events.Applier[State] {
	return func(state State, evt events.Event) (State, error) {
		if events.IsNil(evt) {
			return state, ErrUnknownEvent
		}
		if v := evt.Version(); v != 0 && v != next {
			return state, fmt.Errorf("%w: got version %d, want %d", ErrOutOfSequence, v, next)
		}
		state, err := Apply(state, evt)
		if err != nil {
			return state, err
		}
		next++
		return state, nil
	}
}

func cloneTags(tags map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(tags)+1)
	for tag := range tags {
		out[tag] = struct{}{}
	}
	return out
}
