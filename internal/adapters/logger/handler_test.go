package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/adapters/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{"info", slog.LevelInfo, "message\n"},
		{"warn", slog.LevelWarn, "! message\n"},
		{"error", slog.LevelError, "✗ message\n"},
		{"debug filtered", slog.LevelDebug, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, "message")

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).With("step", "configure")
	lg.Info("running", "generator", "Ninja")
	lg.WithGroup("cmake").Info("grouped", "generator", "Ninja")

	assert.Equal(t, "running step=configure generator=Ninja\n"+
		"grouped cmake.step=configure cmake.generator=Ninja\n", buf.String())
}
