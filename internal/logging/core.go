package logging

import (
	"go.uber.org/zap/zapcore"
)

type encodingSelector interface {
	Encoding() Encoding
}

// core is a zapcore.Core that picks its encoder from the owning Logging at
// write time, so a format change applies to loggers created earlier.
type core struct {
	zapcore.LevelEnabler
	encoders map[Encoding]zapcore.Encoder
	selector encodingSelector
	output   zapcore.WriteSyncer
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	clones := make(map[Encoding]zapcore.Encoder, len(c.encoders))
	for name, enc := range c.encoders {
		clone := enc.Clone()
		for _, f := range fields {
			f.AddTo(clone)
		}
		clones[name] = clone
	}

	return &core{
		LevelEnabler: c.LevelEnabler,
		encoders:     clones,
		selector:     c.selector,
		output:       c.output,
	}
}

func (c *core) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *core) Write(e zapcore.Entry, fields []zapcore.Field) error {
	enc, ok := c.encoders[c.selector.Encoding()]
	if !ok {
		enc = c.encoders[CONSOLE]
	}

	buf, err := enc.EncodeEntry(e, fields)
	if err != nil {
		return err
	}
	_, err = c.output.Write(buf.Bytes())
	buf.Free()
	if err != nil {
		return err
	}

	if e.Level >= zapcore.PanicLevel {
		return c.Sync()
	}
	return nil
}

func (c *core) Sync() error {
	return c.output.Sync()
}
