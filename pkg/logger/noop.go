package logger

import (
	"context"

	"github.com/superawesome/blog/pkg/interfaces"
)

// NoopLogger satisfies interfaces.Logger and drops every entry. FromContext
// falls back to it when no logger was attached, so callers never nil-check.
type NoopLogger struct{}

// NewNoop returns a logger that writes nothing, e.g. when the zap config
// cannot be built.
func NewNoop() interfaces.Logger {
	return &NoopLogger{}
}

// Debug drops the entry.
func (n *NoopLogger) Debug(msg string, fields ...interfaces.Field) {}

// Info drops the entry.
func (n *NoopLogger) Info(msg string, fields ...interfaces.Field) {}

// Warn drops the entry.
func (n *NoopLogger) Warn(msg string, fields ...interfaces.Field) {}

// Error drops the entry.
func (n *NoopLogger) Error(msg string, fields ...interfaces.Field) {}

// WithContext ignores the post and request fields carried by ctx.
func (n *NoopLogger) WithContext(ctx context.Context) interfaces.Logger {
	return n
}

// WithFields returns n unchanged; there is nothing to attach fields to.
func (n *NoopLogger) WithFields(fields ...interfaces.Field) interfaces.Logger {
	return n
}
