package logging

import (
	"context"
	"log/slog"
)

// ContextLogger carries attributes and a context and resolves the package
// logger on every call, so it keeps working after Init swaps handlers.
type ContextLogger struct {
	ctx   context.Context
	attrs []any
}

// FromContext creates a ContextLogger from a context.
func FromContext(ctx context.Context) *ContextLogger {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ContextLogger{ctx: ctx}
}

// ForStore creates a ContextLogger tagged with a store name.
func ForStore(name string) *ContextLogger {
	return FromContext(context.Background()).With(KeyStore, name)
}

// With returns a new ContextLogger with additional attributes.
func (cl *ContextLogger) With(args ...any) *ContextLogger {
	attrs := make([]any, 0, len(cl.attrs)+len(args))
	attrs = append(attrs, cl.attrs...)
	attrs = append(attrs, args...)
	return &ContextLogger{ctx: cl.ctx, attrs: attrs}
}

func (cl *ContextLogger) logger() *slog.Logger {
	return Logger().With(cl.attrs...)
}

// Info logs at INFO level.
func (cl *ContextLogger) Info(msg string, args ...any) {
	cl.logger().InfoContext(cl.ctx, msg, args...)
}

// Debug logs at DEBUG level.
func (cl *ContextLogger) Debug(msg string, args ...any) {
	cl.logger().DebugContext(cl.ctx, msg, args...)
}

// Warn logs at WARN level.
func (cl *ContextLogger) Warn(msg string, args ...any) {
	cl.logger().WarnContext(cl.ctx, msg, args...)
}

// Error logs at ERROR level.
func (cl *ContextLogger) Error(msg string, args ...any) {
	cl.logger().ErrorContext(cl.ctx, msg, args...)
}
