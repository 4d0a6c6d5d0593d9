package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithWorkspace creates a child logger with a workspace field
func WithWorkspace(ctx context.Context, workspace string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("workspace", workspace).Logger()
	return WithContext(ctx, childLogger)
}

// WithWindowID creates a child logger with a window field
func WithWindowID(ctx context.Context, window string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("window", window).Logger()
	return WithContext(ctx, childLogger)
}

// WithEngine creates a child logger describing a layout engine
func WithEngine(ctx context.Context, name, identity string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("engine", name).Str("engine_id", identity).Logger()
	return WithContext(ctx, childLogger)
}
