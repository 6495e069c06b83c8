package notifier

import (
	"context"
	"log/slog"
)

var _ Notifier = (*Log)(nil)

// Log is a terminal that emits each payload through an injected slog.Logger.
type Log struct {
	logger *slog.Logger
	level  slog.Level
}

// LogOption configures a Log terminal.
type LogOption func(*Log)

// Level sets the level payloads are logged at. It defaults to slog.LevelInfo.
func Level(level slog.Level) LogOption {
	return func(l *Log) {
		l.level = level
	}
}

// NewLog returns a Log terminal emitting through logger.
// It panics if logger is nil.
func NewLog(logger *slog.Logger, opts ...LogOption) *Log {
	if logger == nil {
		panic("notifier: nil logger")
	}
	l := &Log{logger: logger, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (n *Log) Notify(ctx context.Context, message string) error {
	return n.Deliver(ctx, n.Format(message))
}

func (n *Log) Deliver(ctx context.Context, payload string) error {
	n.logger.Log(ctx, n.level, payload)
	return nil
}

func (n *Log) Format(message string) string {
	return message
}

func (n *Log) Describe() string {
	return "Log"
}
