package post

import (
	apperrors "github.com/superawesome/blog/pkg/errors"
)

var (
	// ErrEmptyID is returned when a post is created without an id
	ErrEmptyID = apperrors.InvalidArgument("post id is required")

	// ErrEmptyTitle is returned when a post is published without a title
	ErrEmptyTitle = apperrors.InvalidArgument("post title is required")

	// ErrEmptyContent is returned when a post is published without content
	ErrEmptyContent = apperrors.InvalidArgument("post content is required")

	// ErrEmptyTag is returned when a blank tag is added or removed
	ErrEmptyTag = apperrors.InvalidArgument("tag is required")

	// ErrEmptyHistory is returned when a post is reconstituted from no events
	ErrEmptyHistory = apperrors.InvalidArgument("event history is empty")

	// ErrNotCreated is returned when an event or command reaches a post
	// whose creation has not been folded in
	ErrNotCreated = apperrors.ReplayOrderViolation("post has not been created")

	// ErrAlreadyCreated is returned when a second creation event is applied
	ErrAlreadyCreated = apperrors.ReplayOrderViolation("post already created")

	// ErrForeignEvent is returned when an event of another stream is applied
	ErrForeignEvent = apperrors.ReplayOrderViolation("event belongs to another aggregate")

	// ErrOutOfSequence is returned when an event's stream version does not follow the post version
	ErrOutOfSequence = apperrors.ReplayOrderViolation("event out of sequence")

	// ErrUnknownEvent is returned for nil events and types the post does not handle
	ErrUnknownEvent = apperrors.ReplayOrderViolation("unknown post event")
)
