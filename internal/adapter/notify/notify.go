// Package notify implements port.Notifier: structured logging, Prometheus
// counters, an in-memory recorder of recent outcomes and a fan-out.
package notify

import (
	"context"
	"log/slog"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

// Multi delivers every outcome to each notifier in order.
type Multi []port.Notifier

func (m Multi) Notify(ctx context.Context, outcome domain.Outcome) {
	for _, n := range m {
		n.Notify(ctx, outcome)
	}
}

// Logger writes outcomes to a slog.Logger. Rejections are logged at warn
// level.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) Notify(ctx context.Context, outcome domain.Outcome) {
	attrs := []slog.Attr{
		slog.String("id", outcome.ID),
		slog.String("kind", string(outcome.Kind)),
		slog.String("subject", outcome.Subject),
	}
	if !outcome.Failed {
		l.logger.LogAttrs(ctx, slog.LevelInfo, "outcome", attrs...)
		return
	}
	attrs = append(attrs,
		slog.String("code", string(outcome.Code)),
		slog.String("message", outcome.Message))
	l.logger.LogAttrs(ctx, slog.LevelWarn, "outcome rejected", attrs...)
}
