package oaslog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	l := NopLogger{}
	l.Debug("message", "key", "value")
	l.Info("message")
	l.Warn("message")
	l.Error("message")

	_, ok := l.With("key", "value").(NopLogger)
	assert.True(t, ok, "With should return NopLogger")
}

func TestSlogAdapter(t *testing.T) {
	newAdapter := func(buf *bytes.Buffer) *SlogAdapter {
		handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		return NewSlogAdapter(slog.New(handler))
	}

	tests := []struct {
		name  string
		log   func(Logger)
		level string
	}{
		{"debug", func(l Logger) { l.Debug("hello", "k", "v") }, "level=DEBUG"},
		{"info", func(l Logger) { l.Info("hello", "k", "v") }, "level=INFO"},
		{"warn", func(l Logger) { l.Warn("hello", "k", "v") }, "level=WARN"},
		{"error", func(l Logger) { l.Error("hello", "k", "v") }, "level=ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newAdapter(&buf))
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), "msg=hello")
			assert.Contains(t, buf.String(), "k=v")
		})
	}

	t.Run("With prepends attributes", func(t *testing.T) {
		var buf bytes.Buffer
		l := newAdapter(&buf).With("component", "encoder")
		l.Info("done")
		assert.Contains(t, buf.String(), "component=encoder")
	})

	t.Run("nil uses default", func(t *testing.T) {
		assert.NotNil(t, NewSlogAdapter(nil).logger)
	})
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, NopLogger{}, OrNop(nil))

	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))
	assert.Same(t, adapter, OrNop(adapter))
}
