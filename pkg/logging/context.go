package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type loggerKey struct{}
type runIDKey struct{}

// WithLogger stashes logger in ctx for callers further down the chain.
// A nil logger stores the default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or the default logger
// when ctx carries none.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is shorthand for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithRunID tags ctx and its logger with a reconciliation run ID so the
// events of one run can be picked out of interleaved output.
func WithRunID(ctx context.Context, runID string) context.Context {
	ctx = context.WithValue(ctx, runIDKey{}, runID)
	logger := FromContext(ctx).With().Str("run_id", runID).Logger()
	return WithLogger(ctx, &logger)
}

// RunID reads the reconciliation run ID, or "" when ctx has none.
func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithFields returns ctx with a logger that attaches fields to every
// event.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	logger := FromContext(ctx).With().Fields(fields).Logger()
	return WithLogger(ctx, &logger)
}

// WithField returns ctx with a logger that attaches one field to every
// event. An error under one of the conventional error keys renders as
// a zerolog error field.
func WithField(ctx context.Context, key string, value any) context.Context {
	logCtx := FromContext(ctx).With()
	if err, ok := value.(error); ok && (key == "error" || key == "err") {
		logCtx = logCtx.Err(err)
	} else {
		logCtx = logCtx.Fields(map[string]any{key: value})
	}
	logger := logCtx.Logger()
	return WithLogger(ctx, &logger)
}

// WithHandle tags the context logger with the table handle being worked on.
func WithHandle(ctx context.Context, handle string) context.Context {
	return WithField(ctx, "handle", handle)
}

// WithSource tags the context logger with the sheet or snapshot source.
func WithSource(ctx context.Context, source string) context.Context {
	return WithField(ctx, "source", source)
}

// WithOperation tags the context logger with the operation name.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}

// WithError tags the context logger with err. A nil err leaves ctx
// unchanged.
func WithError(ctx context.Context, err error) context.Context {
	if err == nil {
		return ctx
	}
	return WithField(ctx, "error", err)
}
