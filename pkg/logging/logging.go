package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type LoggerConfig struct {
	Level  string `yaml:"level"`
	IsJSON bool   `yaml:"is_json"`
}

// ParseLevel maps a config level name to a slog level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

func (c *LoggerConfig) Validate() error {
	_, err := ParseLevel(c.Level)
	return err
}

// InitLogger builds the process logger writing to w and installs it as the slog default.
func InitLogger(cfg *LoggerConfig, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	if cfg == nil {
		cfg = &LoggerConfig{}
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.IsJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h.WithAttrs(attrs))
	slog.SetDefault(logger)

	return logger
}
