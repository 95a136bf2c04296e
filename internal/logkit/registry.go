package logkit

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Registry maps channel names to configured loggers. Each channel writes to
// <dir>/<channel>.log. The zero value is not usable; construct with New.
type Registry struct {
	dir     string
	level   zapcore.Level
	mu      sync.Mutex
	loggers map[string]*zap.Logger
}

// New creates a registry whose channels log into dir at the given level.
func New(dir string, level zapcore.Level) *Registry {
	return &Registry{
		dir:     dir,
		level:   level,
		loggers: make(map[string]*zap.Logger),
	}
}

// Get returns the logger for a channel, creating it and its file sink on
// first use. Duplicate registrations return the original logger.
func (r *Registry) Get(channel string) (*zap.Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if logger, ok := r.loggers[channel]; ok {
		return logger, nil
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", r.dir, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(r.level)
	cfg.OutputPaths = []string{filepath.Join(r.dir, channel+".log")}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build(zap.Fields(zap.String("channel", channel)))
	if err != nil {
		return nil, fmt.Errorf("building logger for channel %q: %w", channel, err)
	}

	r.loggers[channel] = logger
	return logger, nil
}

// Channels returns the names of all registered channels.
func (r *Registry) Channels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	return names
}

// Close syncs every registered logger. Sync errors on regular files are
// collected; the first one is returned.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for name, logger := range r.loggers {
		if err := logger.Sync(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("syncing channel %q: %w", name, err)
		}
	}
	return firstErr
}
