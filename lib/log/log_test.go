package log

import (
	"context"
	"testing"
	"time"

	"cdr.dev/slog"
	"github.com/stretchr/testify/assert"
)

func TestWithDefault(t *testing.T) {
	ctx := WithTB(context.Background(), t, nil)
	assert.Equal(t, ctx, WithDefault(ctx))

	ctx = WithDefault(context.Background())
	_, ok := ctx.Value(loggerKey{}).(slog.Logger)
	assert.True(t, ok)
}

func TestWithTimeout(t *testing.T) {
	t.Setenv("UNLAYERKIT_TIMEOUT", "")

	ctx, cancel := WithTimeout(context.Background(), time.Minute)
	defer cancel()
	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)

	ctx, cancel = WithTimeout(context.Background(), 0)
	defer cancel()
	_, ok = ctx.Deadline()
	assert.False(t, ok)

	t.Setenv("UNLAYERKIT_TIMEOUT", "2")
	ctx, cancel = WithTimeout(context.Background(), time.Minute)
	defer cancel()
	deadline, ok = ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
}
