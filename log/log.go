// Package log defines the logger used by the queue and adapters to zap.
package log

import (
	"context"
)

// Logger is the interface that wraps debug logging of queue operations.
type Logger interface {
	Debug(ctx context.Context, msg string, keysAndValues ...any)
}

// NewNop returns a logger that discards everything.
func NewNop() Nop {
	return Nop{}
}

// Nop is the default logger, it does nothing.
type Nop struct{}

// Debug implements Logger.
func (Nop) Debug(context.Context, string, ...any) {}
