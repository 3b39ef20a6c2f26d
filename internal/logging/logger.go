package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// A Logger is an adapter around a zap.SugaredLogger. Methods without a
// formatting suffix join their arguments with spaces, like fmt.Sprintln.
type Logger struct{ s *zap.SugaredLogger }

func newLogger(l *zap.Logger) *Logger {
	return &Logger{s: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l *Logger) Debug(args ...interface{})                   { l.s.Debug(formatArgs(args)) }
func (l *Logger) Debugf(template string, args ...interface{}) { l.s.Debugf(template, args...) }
func (l *Logger) Debugw(msg string, kvPairs ...interface{})   { l.s.Debugw(msg, kvPairs...) }
func (l *Logger) Info(args ...interface{})                    { l.s.Info(formatArgs(args)) }
func (l *Logger) Infof(template string, args ...interface{})  { l.s.Infof(template, args...) }
func (l *Logger) Infow(msg string, kvPairs ...interface{})    { l.s.Infow(msg, kvPairs...) }
func (l *Logger) Warn(args ...interface{})                    { l.s.Warn(formatArgs(args)) }
func (l *Logger) Warnf(template string, args ...interface{})  { l.s.Warnf(template, args...) }
func (l *Logger) Warnw(msg string, kvPairs ...interface{})    { l.s.Warnw(msg, kvPairs...) }
func (l *Logger) Error(args ...interface{})                   { l.s.Error(formatArgs(args)) }
func (l *Logger) Errorf(template string, args ...interface{}) { l.s.Errorf(template, args...) }
func (l *Logger) Errorw(msg string, kvPairs ...interface{})   { l.s.Errorw(msg, kvPairs...) }
func (l *Logger) Fatalf(template string, args ...interface{}) { l.s.Fatalf(template, args...) }

func (l *Logger) Named(name string) *Logger { return &Logger{s: l.s.Named(name)} }
func (l *Logger) Sync() error               { return l.s.Sync() }
func (l *Logger) Zap() *zap.Logger          { return l.s.Desugar() }

func (l *Logger) IsEnabledFor(level zapcore.Level) bool {
	return l.s.Desugar().Core().Enabled(level)
}

func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{s: l.s.With(args...)}
}

func formatArgs(args []interface{}) string { return strings.TrimSuffix(fmt.Sprintln(args...), "\n") }
