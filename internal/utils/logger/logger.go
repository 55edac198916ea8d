package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/angeliquesouvant/bank-account/internal/model"
)

// New logs to stderr so that statements printed on stdout stay clean.
func New(logLevel slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, logLevel)
}

func NewWithWriter(w io.Writer, logLevel slog.Level) *slog.Logger {
	return slog.New(
		slog.NewTextHandler(
			w,
			&slog.HandlerOptions{Level: logLevel},
		))
}

// ParseLevel maps debug, info, warn(ing) and error; anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	ctxWithLogger := context.WithValue(ctx, model.KeyContextLogger, log)
	return ctxWithLogger
}

func FromContext(ctx context.Context) *slog.Logger {
	logRaw := ctx.Value(model.KeyContextLogger)
	if logRaw == nil {
		return slog.Default()
	}
	if log, ok := logRaw.(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
