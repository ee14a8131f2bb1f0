package log

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*Zap)(nil)

// NewZap returns a Logger that writes to the given zap logger.
func NewZap(l *zap.Logger) *Zap {
	return &Zap{l.Sugar()}
}

// NewProduction builds a json zap logger at the given level ("debug", "info", ...).
func NewProduction(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.LevelKey = "severity"

	return cfg.Build()
}

// Zap is a zap backed Logger.
type Zap struct {
	l *zap.SugaredLogger
}

// Debug implements Logger.
func (z *Zap) Debug(_ context.Context, msg string, keysAndValues ...any) {
	z.l.Debugw(msg, keysAndValues...)
}
