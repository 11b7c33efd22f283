package storage

import (
	"io"
	"log/slog"
)

// DiagnosticSink receives a formatted dump whenever a record fails to decode.
type DiagnosticSink interface {
	Diagnose(msg string)
}

// NoopSink discards diagnostics.
type NoopSink struct{}

func (NoopSink) Diagnose(string) {}

type logSink struct {
	logger *slog.Logger
}

// NewLogSink writes diagnostics as warnings to w.
func NewLogSink(w io.Writer) DiagnosticSink {
	if w == nil {
		return NoopSink{}
	}
	return &logSink{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
}

func (s *logSink) Diagnose(msg string) {
	s.logger.Warn("deserialize_error", "dump", msg)
}
