package logger

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger: one JSON object per line on stdout,
// timestamps rendered as RFC3339Nano in loc.
func New(level string, loc *time.Location) *zap.Logger {
	return NewWithWriter(os.Stdout, level, loc)
}

// NewWithWriter is New with a custom sink.
func NewWithWriter(w io.Writer, level string, loc *time.Location) *zap.Logger {
	if loc == nil {
		loc = time.UTC
	}
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if level != "" {
		if l, err := zapcore.ParseLevel(level); err == nil {
			lvl.SetLevel(l)
		}
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		CallerKey:      zapcore.OmitKey,
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.In(loc).Format(time.RFC3339Nano))
		},
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core)
}

// Location resolves a timezone name, falling back to UTC.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
