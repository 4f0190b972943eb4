// Package logging builds the application's zerolog loggers and carries them
// through context so every layer emits structured events with consistent
// component and trace fields.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config selects the log level and output format.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	Level string
	// Console switches to the human-readable console writer; otherwise
	// events are emitted as JSON lines.
	Console bool
	// Out defaults to os.Stderr.
	Out io.Writer
}

// New constructs the root logger. An unparseable level falls back to info
// rather than failing command startup.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// ComponentLogger tags a logger with the component emitting its events.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger carried by ctx, or a disabled logger when
// none was attached. Calculation packages log through this so library use
// without a configured logger stays silent.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

type traceIDKey struct{}

// NewTraceID generates a ULID for correlating one CLI invocation's events.
// Trace IDs never appear in calculation output, which must stay byte-stable
// across identical inputs.
func NewTraceID() string {
	return ulid.Make().String()
}

// ContextWithTraceID attaches a trace ID to ctx and stamps it onto the
// context logger.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	logger := zerolog.Ctx(ctx).With().Str("trace_id", traceID).Logger()
	ctx = logger.WithContext(ctx)
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID attached to ctx, if any.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(traceIDKey{}).(string)
	return id, ok
}
