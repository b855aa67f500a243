package notify

import (
	"context"
	"log/slog"
)

// LogSender writes notifications to the log instead of delivering them. It
// stands in when no NATS server is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "log_sender")}
}

func (s *LogSender) Send(ctx context.Context, to, message string) bool {
	s.logger.InfoContext(ctx, "notification", "to", to, "message", message)
	return true
}
