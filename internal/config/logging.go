package config

import (
	"io"
	"log/slog"
	"strings"
)

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Log format: json, text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// NewLogger builds the slog logger described by the config
func (c LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLogLevel(c.Level)}

	var handler slog.Handler
	if c.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLogLevel maps a level name to a slog level, defaulting to info
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
