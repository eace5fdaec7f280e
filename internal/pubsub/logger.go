package pubsub

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/ThreeDotsLabs/watermill"
)

// levelTrace sits below debug; watermill traces every delivery.
const levelTrace = slog.LevelDebug - 4

// slogAdapter routes watermill's logs into slog. Watermill's info messages
// (subscribing, closing) are logged at debug.
type slogAdapter struct {
	logger *slog.Logger
}

func newSlogAdapter(l *slog.Logger) watermill.LoggerAdapter {
	return slogAdapter{logger: l}
}

func (a slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.logger.Error(msg, append(attrs(fields), "error", err)...)
}

func (a slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, attrs(fields)...)
}

func (a slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, attrs(fields)...)
}

func (a slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.Log(context.Background(), levelTrace, msg, attrs(fields)...)
}

func (a slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return slogAdapter{logger: a.logger.With(attrs(fields)...)}
}

func attrs(fields watermill.LogFields) []any {
	out := make([]any, 0, len(fields)*2)
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		out = append(out, k, fields[k])
	}
	return out
}
