// Package logging provides named, leveled loggers backed by zap.
//
// All loggers obtained from one Logging share its level, encoding and writer,
// and pick up changes to them immediately.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encoding selects how log records are rendered.
type Encoding int8

const (
	CONSOLE Encoding = iota
	JSON
	LOGFMT
)

// LevelEnv is consulted for the level when Config.Level is empty.
const LevelEnv = "S256_LOG_LEVEL"

const defaultLevel = zapcore.InfoLevel

// Config is used to provide dependencies to a Logging instance.
type Config struct {
	// Format is "console", "json" or "logfmt". Empty means console.
	Format string

	// Level is a zap level name such as "debug" or "warn". When empty, the
	// value of S256_LOG_LEVEL is used, and INFO if that is unset too.
	Level string

	// Writer is the sink for encoded log records. Defaults to os.Stderr.
	Writer io.Writer
}

// Logging maintains the state shared by a family of named loggers.
type Logging struct {
	level zap.AtomicLevel

	mutex         sync.RWMutex
	encoding      Encoding
	encoderConfig zapcore.EncoderConfig
	writer        zapcore.WriteSyncer
}

// New creates a new logging system and initializes it with the provided
// configuration.
func New(c Config) (*Logging, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	s := &Logging{
		level:         zap.NewAtomicLevelAt(defaultLevel),
		encoderConfig: encoderConfig,
	}
	if err := s.Apply(c); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply applies the provided configuration to the logging system.
func (s *Logging) Apply(c Config) error {
	if err := s.SetFormat(c.Format); err != nil {
		return err
	}

	if c.Level == "" {
		c.Level = os.Getenv(LevelEnv)
	}
	if c.Level == "" {
		c.Level = defaultLevel.String()
	}
	if err := s.SetLevel(c.Level); err != nil {
		return err
	}

	if c.Writer == nil {
		c.Writer = os.Stderr
	}
	s.SetWriter(c.Writer)
	return nil
}

// ParseEncoding maps a format name to its Encoding.
func ParseEncoding(format string) (Encoding, error) {
	switch strings.ToLower(format) {
	case "", "console":
		return CONSOLE, nil
	case "json":
		return JSON, nil
	case "logfmt":
		return LOGFMT, nil
	default:
		return CONSOLE, errors.Errorf("invalid log format %q", format)
	}
}

// SetFormat updates how log records are encoded. Log entries created after
// this method has completed will use the new format.
func (s *Logging) SetFormat(format string) error {
	enc, err := ParseEncoding(format)
	if err != nil {
		return err
	}
	s.mutex.Lock()
	s.encoding = enc
	s.mutex.Unlock()
	return nil
}

// SetLevel changes the minimum enabled level of every logger.
func (s *Logging) SetLevel(level string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	s.level.SetLevel(l)
	return nil
}

// Level returns the current minimum enabled level.
func (s *Logging) Level() zapcore.Level {
	return s.level.Level()
}

// SetWriter controls which writer formatted log records are written to.
// Writers, with the exception of an *os.File, need to be safe for concurrent
// use by multiple go routines.
func (s *Logging) SetWriter(w io.Writer) {
	var sw zapcore.WriteSyncer
	switch t := w.(type) {
	case *os.File:
		sw = zapcore.Lock(t)
	case zapcore.WriteSyncer:
		sw = t
	default:
		sw = zapcore.AddSync(w)
	}

	s.mutex.Lock()
	s.writer = sw
	s.mutex.Unlock()
}

// Write satisfies io.Writer by delegating to the configured writer.
func (s *Logging) Write(b []byte) (int, error) {
	s.mutex.RLock()
	w := s.writer
	s.mutex.RUnlock()

	return w.Write(b)
}

// Sync flushes the configured writer.
func (s *Logging) Sync() error {
	s.mutex.RLock()
	w := s.writer
	s.mutex.RUnlock()

	return w.Sync()
}

// Encoding returns the encoding log records are currently written with.
func (s *Logging) Encoding() Encoding {
	s.mutex.RLock()
	e := s.encoding
	s.mutex.RUnlock()
	return e
}

// ZapLogger instantiates a new zap.Logger with the specified name.
func (s *Logging) ZapLogger(name string) *zap.Logger {
	s.mutex.RLock()
	c := &core{
		LevelEnabler: s.level,
		encoders: map[Encoding]zapcore.Encoder{
			CONSOLE: zapcore.NewConsoleEncoder(s.encoderConfig),
			JSON:    zapcore.NewJSONEncoder(s.encoderConfig),
			LOGFMT:  zaplogfmt.NewEncoder(s.encoderConfig),
		},
		selector: s,
		output:   s,
	}
	s.mutex.RUnlock()

	return zap.New(c, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Named(name)
}

// Logger instantiates a new Logger with the specified name.
func (s *Logging) Logger(name string) *Logger {
	return newLogger(s.ZapLogger(name))
}
