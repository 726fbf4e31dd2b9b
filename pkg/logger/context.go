package logger

import (
	"context"

	"github.com/superawesome/blog/pkg/interfaces"
)

type contextKey int

const (
	loggerKey contextKey = iota
	fieldsKey
)

// FromContext retrieves a logger from the context, or a no-op logger.
func FromContext(ctx context.Context) interfaces.Logger {
	if logger, ok := ctx.Value(loggerKey).(interfaces.Logger); ok {
		return logger
	}
	return NewNoop()
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger interfaces.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithFields attaches fields to the context. Loggers pick them up through
// interfaces.Logger.WithContext.
func WithFields(ctx context.Context, fields ...interfaces.Field) context.Context {
	existing := fieldsFromContext(ctx)
	merged := make([]interfaces.Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, fieldsKey, merged)
}

func fieldsFromContext(ctx context.Context) []interfaces.Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey).([]interfaces.Field)
	return fields
}
