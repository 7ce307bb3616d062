package notifications

import (
	"context"
	"log/slog"

	"eventx/pkg/logger"
)

// LogSink writes notifications to the application log. Used when no
// broker is configured so the rest of the pipeline behaves identically.
type LogSink struct {
	log *logger.Logger
}

// NewLogSink creates a log-backed notification sink.
func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(ctx context.Context, title, body, tag string) {
	s.log.InfoContext(ctx, "Notification",
		slog.String("title", title),
		slog.String("body", body),
		slog.String("tag", tag),
	)
}
