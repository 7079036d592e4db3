// Package logging provides the structured file logger. The terminal belongs
// to the form UI, so log output only ever goes to a file.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger wraps a zap sugared logger with key/value helpers.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New returns a Logger writing JSON lines to path at the given level
// ("debug", "info", "warn", "error"). An empty path yields a no-op logger.
func New(path, level string) (*Logger, error) {
	if path == "" {
		return Nop(), nil
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil

	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: opening %s: %w", path, err)
	}
	return &Logger{sugar: zl.Sugar()}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Sync flushes buffered entries. Errors are ignored; there is nowhere left
// to report them.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// With returns a child Logger carrying the given fields on every entry.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...)}
}
