package device

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext adds a classification to the context for downstream
// consumers.
func WithContext(ctx context.Context, c Classification) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext retrieves a classification from the context.
func FromContext(ctx context.Context) (Classification, bool) {
	if ctx == nil {
		return Classification{}, false
	}
	c, ok := ctx.Value(contextKey{}).(Classification)
	return c, ok
}

// LogExtractor returns a context extractor that injects the current
// classification category into log records.
func LogExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if c, ok := FromContext(ctx); ok {
			return slog.String("device_category", string(c.Category())), true
		}
		return slog.Attr{}, false
	}
}
