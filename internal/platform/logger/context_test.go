package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	t.Parallel()

	base := slog.Default().With(slog.String("component", "test"))
	ctx := WithLogger(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, slog.Default()))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	assert.NotNil(t, FromContext(ctx))

	fallback := slog.Default().With(slog.String("component", "fallback"))
	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))
}
