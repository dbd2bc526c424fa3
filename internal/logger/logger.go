// Package logger holds the process-wide structured logger. Until Setup is
// called every record is discarded, so library code can log unconditionally.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Config selects the log destination and level.
type Config struct {
	Output io.Writer
	Level  string // debug, info, warn or error; empty means info
	JSON   bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup installs a logger built from cfg and returns it.
func Setup(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: level == slog.LevelDebug}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	l := slog.New(h)
	mu.Lock()
	global = l
	mu.Unlock()
	return l, nil
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
