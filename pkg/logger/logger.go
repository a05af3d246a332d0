package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger keeps the printf style call sites of the services on top of zap.
type Logger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

func New() *Logger {
	return NewWithLevel("info")
}

// NewWithLevel builds a development logger for "debug" and a JSON production logger otherwise.
func NewWithLevel(level string) *Logger {
	var cfg zap.Config
	if level == "debug" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		if lvl, err := zapcore.ParseLevel(level); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	base, err := cfg.Build()
	if err != nil {
		base = zap.NewNop()
	}
	return FromZap(base)
}

func FromZap(base *zap.Logger) *Logger {
	return &Logger{
		base:  base,
		sugar: base.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// With returns a child logger carrying the given structured fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return FromZap(l.base.With(fields...))
}

// Zap exposes the underlying logger for structured call sites such as request logging.
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

func (l *Logger) Sync() error {
	return l.base.Sync()
}
