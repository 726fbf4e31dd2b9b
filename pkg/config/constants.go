package config

import "time"

const (
	// EnvPrefix is prepended to every environment override, e.g. BLOG_POST__MAX_RETRIES.
	EnvPrefix = "BLOG"

	// Command retry defaults.
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 10 * time.Millisecond
)
