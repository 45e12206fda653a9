package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"block_explorer/internal/config"
)

// NewAppLogger creates an AppLogger writing to out (stdout when nil) with the
// configured level and format, and installs it as the slog default.
func NewAppLogger(cfg config.LoggerConfig, out io.Writer) (AppLogger, error) {
	level, err := toSlogLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}

	if out == nil {
		out = os.Stdout
	}

	handler, err := toSlogHandler(cfg.Format, out, &slog.HandlerOptions{Level: level})
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}

	slogLogger := slog.New(handler).With("service", "block_explorer")
	slog.SetDefault(slogLogger)

	return NewSlogAdapter(slogLogger), nil
}

// toSlogLevel converts a config.LogLevel to a slog.Level.
func toSlogLevel(level config.LogLevel) (slog.Level, error) {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug, nil
	case config.LogLevelInfo:
		return slog.LevelInfo, nil
	case config.LogLevelWarn:
		return slog.LevelWarn, nil
	case config.LogLevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported logger level: %s", level)
	}
}

// toSlogHandler creates a slog.Handler based on the config.LogFormat.
func toSlogHandler(format config.LogFormat, out io.Writer, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch format {
	case config.LogFormatJSON:
		return slog.NewJSONHandler(out, opts), nil
	case config.LogFormatText:
		return slog.NewTextHandler(out, opts), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
