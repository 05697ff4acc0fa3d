package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the backend and sink.
//
// Format is "text" or "json" for slog, or "zap" for a JSON zap logger.
// When File is set logs go to a size-rotated file instead of stderr, which
// keeps them out of the interactive prompt.
type Options struct {
	Level  string
	Format string
	File   string
}

// New builds a Logger from opts. The returned close function flushes and
// releases the sink and must be called on shutdown.
func New(opts Options) (Logger, func() error, error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() error { return nil }
	)
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w = rotator
		closeFn = rotator.Close
	}

	switch strings.ToLower(opts.Format) {
	case "", "text":
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(opts.Level)}))), closeFn, nil

	case "json":
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel(opts.Level)}))), closeFn, nil

	case "zap":
		level, err := zapcore.ParseLevel(levelOrDefault(opts.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %s: %w", opts.Level, err)
		}
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(w), level)
		zl := NewZapLogger(zap.New(core))
		return zl, func() error {
			_ = zl.Sync()
			return closeFn()
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
}

func levelOrDefault(s string) string {
	if s == "" {
		return "info"
	}
	return s
}

func slogLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(levelOrDefault(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
