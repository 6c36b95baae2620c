package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiHandler_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		levels   []slog.Level
		level    slog.Level
		expected bool
	}{
		{"one handler enabled", []slog.Level{slog.LevelDebug, slog.LevelError}, slog.LevelInfo, true},
		{"no handler enabled", []slog.Level{slog.LevelError, slog.LevelError}, slog.LevelInfo, false},
		{"all handlers enabled", []slog.Level{slog.LevelDebug, slog.LevelInfo}, slog.LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlers := make([]slog.Handler, len(tt.levels))
			for i, l := range tt.levels {
				handlers[i] = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: l})
			}

			assert.Equal(t, tt.expected, NewMultiHandler(handlers...).Enabled(context.Background(), tt.level))
		})
	}
}

func TestMultiHandler_Handle(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer

	logger := slog.New(NewMultiHandler(
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	))

	logger.Info("both")
	assert.Contains(t, debugBuf.String(), "both")
	assert.Contains(t, infoBuf.String(), "both")

	debugBuf.Reset()
	infoBuf.Reset()

	logger.Debug("debug only")
	assert.Contains(t, debugBuf.String(), "debug only")
	assert.Empty(t, infoBuf.String())
}

func TestMultiHandler_WithAttrsAndGroup(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	multi := NewMultiHandler(slog.NewJSONHandler(&buf1, nil), slog.NewJSONHandler(&buf2, nil))
	logger := slog.New(multi.WithAttrs([]slog.Attr{slog.String("dialect", "yoda")}).WithGroup("upstream"))

	logger.Info("translated", slog.Int("status", 200))

	for _, out := range []string{buf1.String(), buf2.String()} {
		assert.Contains(t, out, `"dialect":"yoda"`)
		assert.Contains(t, out, `"upstream":{"status":200}`)
	}
}
