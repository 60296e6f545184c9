package log

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// ContextWithRequestID stores the request ID in ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestIDFromContext extracts the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}

// WithContext enriches l with the request ID carried by ctx.
func WithContext(ctx context.Context, l zerolog.Logger) zerolog.Logger {
	if rid := RequestIDFromContext(ctx); rid != "" {
		return l.With().Str("request_id", rid).Logger()
	}
	return l
}

// FromContext returns the logger attached to ctx, or the process logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
			return l
		}
	}
	b := Base()
	return &b
}
