package post

import (
	"github.com/superawesome/blog/internal/domain/events"
)

const (
	// AggregateType names the post stream type
	AggregateType = "post"

	EventTypeCreated       = "post.created"
	EventTypeCategorized   = "post.categorized"
	EventTypeUncategorized = "post.uncategorized"
	EventTypePublished     = "post.published"
	EventTypeTagged        = "post.tagged"
	EventTypeUntagged      = "post.untagged"
)

// Created starts a post stream. The post id is the event's aggregate id.
type Created struct {
	events.BaseEvent
}

// Categorized records the category a post was filed under.
type Categorized struct {
	events.BaseEvent
	Category string `json:"category"`
}

// Uncategorized records that a post left its previous category.
type Uncategorized struct {
	events.BaseEvent
	Category string `json:"category"`
}

// Published records the title, body and category a post was published with.
type Published struct {
	events.BaseEvent
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// Tagged records a tag added to a post.
type Tagged struct {
	events.BaseEvent
	Tag string `json:"tag"`
}

// Untagged records a tag removed from a post.
type Untagged struct {
	events.BaseEvent
	Tag string `json:"tag"`
}

// NewCreated creates a post.created event.
func NewCreated(base events.BaseEvent) *Created {
	return &Created{BaseEvent: base}
}

// NewCategorized creates a post.categorized event.
func NewCategorized(base events.BaseEvent, category string) *Categorized {
	return &Categorized{BaseEvent: base, Category: category}
}

// NewUncategorized creates a post.uncategorized event.
func NewUncategorized(base events.BaseEvent, category string) *Uncategorized {
	return &Uncategorized{BaseEvent: base, Category: category}
}

// NewPublished creates a post.published event.
func NewPublished(base events.BaseEvent, title, content, category string) *Published {
	return &Published{BaseEvent: base, Title: title, Content: content, Category: category}
}

// NewTagged creates a post.tagged event.
func NewTagged(base events.BaseEvent, tag string) *Tagged {
	return &Tagged{BaseEvent: base, Tag: tag}
}

// NewUntagged creates a post.untagged event.
func NewUntagged(base events.BaseEvent, tag string) *Untagged {
	return &Untagged{BaseEvent: base, Tag: tag}
}
