package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// Component returns a child of the context logger tagged with name.
func Component(ctx context.Context, name string) zerolog.Logger {
	return FromContext(ctx).With().Str("component", name).Logger()
}

// TruncateURL cuts uri to maxLen bytes, ending in "...".
func TruncateURL(uri string, maxLen int) string {
	const ellipsis = "..."
	if maxLen <= len(ellipsis) || len(uri) <= maxLen {
		return uri
	}
	return uri[:maxLen-len(ellipsis)] + ellipsis
}
