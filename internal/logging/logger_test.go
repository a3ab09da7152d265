package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("drops time outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(&buf, "info", false)
		log.Debug("hidden")
		log.Info("shown", "module", "token")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown module=token")
		assert.NotContains(t, out, "time=")
	})

	t.Run("debug enables debug level and source", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(&buf, "error", true)
		log.Debug("details")

		out := buf.String()
		assert.Contains(t, out, "msg=details")
		assert.Contains(t, out, "source=")
		assert.Contains(t, out, "time=")
	})
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/form_controller.go", shortPath("/home/dev/treb-interact/internal/usecase/form_controller.go"))
	assert.Equal(t, "main.go", shortPath("/tmp/build/main.go"))
}
