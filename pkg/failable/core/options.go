package core

import (
	"context"

	"go.uber.org/zap"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
	TraceOptionKey  OptionKey = "trace_options"
)

type LoggerOptions struct {
	Logger *zap.Logger
}

type TraceOptions struct {
	TraceAborts bool
}

// WithLogger attaches the logger used by the asynchronous builder driver.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// WithTraceAborts makes the driver log every abort it converts into a failure.
func WithTraceAborts(ctx context.Context, traceAborts bool) context.Context {
	return context.WithValue(ctx, TraceOptionKey, TraceOptions{TraceAborts: traceAborts})
}

// GetLogger returns the logger stored in ctx, or a no-op logger.
func GetLogger(ctx context.Context) *zap.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return zap.NewNop()
}

func IsTraceAbortsEnabled(ctx context.Context, defaultTraceAborts bool) bool {
	options, ok := ctx.Value(TraceOptionKey).(TraceOptions)
	if ok {
		return options.TraceAborts
	}
	return defaultTraceAborts
}
