// Package post orchestrates post commands against an event store.
package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/superawesome/blog/internal/domain/events"
	"github.com/superawesome/blog/internal/domain/post"
	apperrors "github.com/superawesome/blog/pkg/errors"
	"github.com/superawesome/blog/pkg/interfaces"
)

var (
	// ErrPostExists is returned when creating a post whose stream already has events
	ErrPostExists = apperrors.Conflict("post already exists")
	// ErrPostNotFound is returned when a post stream has no events
	ErrPostNotFound = apperrors.NotFound("post not found")
)

// Service handles use case orchestration for post commands
type Service struct {
	store  events.EventStore
	logger interfaces.Logger
	config Config
}

// NewService creates a new post application service
func NewService(store events.EventStore, logger interfaces.Logger, cfg Config) *Service {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &Service{
		store:  store,
		logger: logger,
		config: cfg,
	}
}

// Create starts a new post stream and returns the appended events
func (s *Service) Create(ctx context.Context, cmd CreatePostCommand) ([]events.Event, error) {
	log := s.logger.WithContext(ctx).WithFields(
		interfaces.String("post_id", cmd.PostID),
		interfaces.String("command", "create"),
	)

	p, err := post.Create(cmd.PostID, s.options()...)
	if err != nil {
		log.Warn("command rejected", interfaces.Error(err))
		return nil, err
	}

	pending := p.UncommittedEvents()
	if err := s.store.Append(ctx, p.ID(), p.PersistedVersion(), pending); err != nil {
		if errors.Is(err, events.ErrConcurrencyConflict) {
			log.Warn("post already exists")
			return nil, fmt.Errorf("create post %s: %w", cmd.PostID, ErrPostExists)
		}
		return nil, fmt.Errorf("appending events: %w", err)
	}
	p.ClearUncommittedEvents()

	log.Info("post created", interfaces.Int("version", p.Version()))
	return pending, nil
}

// Publish publishes a post and returns the appended events
func (s *Service) Publish(ctx context.Context, cmd PublishPostCommand) ([]events.Event, error) {
	return s.execute(ctx, "publish", cmd.PostID, func(p *post.Post) error {
		return p.Publish(cmd.Title, cmd.Content, cmd.Category)
	})
}

// AddTag tags a post and returns the appended events
func (s *Service) AddTag(ctx context.Context, cmd TagPostCommand) ([]events.Event, error) {
	return s.execute(ctx, "add_tag", cmd.PostID, func(p *post.Post) error {
		return p.AddTag(cmd.Tag)
	})
}

// RemoveTag untags a post and returns the appended events
func (s *Service) RemoveTag(ctx context.Context, cmd UntagPostCommand) ([]events.Event, error) {
	return s.execute(ctx, "remove_tag", cmd.PostID, func(p *post.Post) error {
		return p.RemoveTag(cmd.Tag)
	})
}

// Get rebuilds a post from its stream
func (s *Service) Get(ctx context.Context, postID string) (*post.Post, error) {
	return s.load(ctx, postID)
}

// execute loads the post, runs fn and appends whatever it decided. A version
// conflict restarts from a fresh replay until MaxRetries is spent.
func (s *Service) execute(ctx context.Context, command, postID string, fn func(*post.Post) error) ([]events.Event, error) {
	log := s.logger.WithContext(ctx).WithFields(
		interfaces.String("post_id", postID),
		interfaces.String("command", command),
	)

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := s.load(ctx, postID)
		if err != nil {
			return nil, err
		}

		if err := fn(p); err != nil {
			log.Warn("command rejected", interfaces.Error(err))
			return nil, err
		}

		if !p.HasUncommittedEvents() {
			log.Debug("command produced no events", interfaces.Int("version", p.Version()))
			return nil, nil
		}

		pending := p.UncommittedEvents()
		err = s.store.Append(ctx, postID, p.PersistedVersion(), pending)
		if err == nil {
			p.ClearUncommittedEvents()
			log.Info("command applied",
				interfaces.Strings("events", events.Types(pending)),
				interfaces.Int("version", p.Version()),
				interfaces.Int("retries", attempt),
			)
			return pending, nil
		}

		if !errors.Is(err, events.ErrConcurrencyConflict) {
			return nil, fmt.Errorf("appending events: %w", err)
		}
		if attempt >= s.config.MaxRetries {
			log.Warn("giving up after version conflicts", interfaces.Int("retries", attempt))
			return nil, fmt.Errorf("%s post %s: %w", command, postID, err)
		}

		log.Debug("stream version conflict, retrying",
			interfaces.Int("attempt", attempt+1),
			interfaces.Duration("backoff", s.config.RetryBackoff*time.Duration(attempt+1)),
		)
		if err := s.backoff(ctx, attempt); err != nil {
			return nil, err
		}
	}
}

func (s *Service) load(ctx context.Context, postID string) (*post.Post, error) {
	history, err := s.store.ReplayEvents(ctx, postID)
	if err != nil {
		if errors.Is(err, events.ErrStreamNotFound) {
			return nil, fmt.Errorf("load post %s: %w", postID, ErrPostNotFound)
		}
		return nil, fmt.Errorf("replaying events: %w", err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("load post %s: %w", postID, ErrPostNotFound)
	}

	p, err := post.Reconstitute(history, s.options()...)
	if err != nil {
		return nil, fmt.Errorf("load post %s: %w", postID, err)
	}
	return p, nil
}

func (s *Service) backoff(ctx context.Context, attempt int) error {
	if s.config.RetryBackoff <= 0 {
		return nil
	}

	timer := time.NewTimer(s.config.RetryBackoff * time.Duration(attempt+1))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) options() []post.Option {
	return []post.Option{post.WithPolicy(s.config.Policy)}
}
