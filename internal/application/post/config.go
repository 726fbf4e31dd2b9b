package post

import (
	"time"

	"github.com/superawesome/blog/internal/domain/post"
	"github.com/superawesome/blog/pkg/config"
)

// Config holds the service settings
type Config struct {
	Policy       post.Policy
	MaxRetries   int
	RetryBackoff time.Duration
}

// DefaultConfig returns guarded commands with the default retry settings
func DefaultConfig() Config {
	return Config{
		Policy:       post.DefaultPolicy(),
		MaxRetries:   config.DefaultMaxRetries,
		RetryBackoff: config.DefaultRetryBackoff,
	}
}

// ConfigFromSettings maps the loaded post settings onto a service Config
func ConfigFromSettings(settings config.PostConfig) Config {
	return Config{
		Policy: post.Policy{
			IdempotentPublish: settings.IdempotentPublish,
			IdempotentTag:     settings.IdempotentTag,
			IdempotentUntag:   settings.IdempotentUntag,
		},
		MaxRetries:   settings.MaxRetries,
		RetryBackoff: settings.RetryBackoff,
	}
}
