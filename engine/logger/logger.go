// Package logger builds the engine's zap logger and exposes it process-wide.
package logger

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Level names a logging verbosity accepted by New.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// New builds a console logger writing to stderr at the given level and installs it as the
// process logger returned by Provide.
//
// Parameters:
//   - level: minimum level to emit; empty means info
//
// Returns:
//   - *zap.Logger: the constructed logger
//   - error: error if the level is unknown or the logger cannot be built
func New(level Level) (*zap.Logger, error) {
	zapLevel, err := toZapLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapLevel),
		Development:       false,
		Encoding:          "console",
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	Replace(l)
	return l, nil
}

// Valid reports whether New accepts the level.
//
// Returns:
//   - bool: true for debug, info, warn, error (any case) and the empty level
func (l Level) Valid() bool {
	_, err := toZapLevel(l)
	return err == nil
}

// Provide returns the process logger. Until New or Replace is called it is a no-op logger.
//
// Returns:
//   - *zap.Logger: the process logger
func Provide() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Replace installs l as the process logger. A nil logger restores the no-op logger.
//
// Parameters:
//   - l: the logger to install
func Replace(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	defer mu.Unlock()
	global = l
}

func toZapLevel(level Level) (zapcore.Level, error) {
	switch Level(strings.ToLower(string(level))) {
	case LevelDebug:
		return zap.DebugLevel, nil
	case LevelInfo, "":
		return zap.InfoLevel, nil
	case LevelWarn:
		return zap.WarnLevel, nil
	case LevelError:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}
