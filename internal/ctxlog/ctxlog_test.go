package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns the embedded logger", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		got := FromContext(WithLogger(context.Background(), logger))

		require.Same(t, logger, got)
	})

	t.Run("falls back to the default logger", func(t *testing.T) {
		t.Parallel()

		require.Same(t, slog.Default(), FromContext(context.Background()))
	})
}
