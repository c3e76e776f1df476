// Package logging builds the process-wide zap logger. The TUI owns the
// terminal, so logs always go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogPath returns the log file location: $STUDYLOOP_LOG if set,
// otherwise $XDG_STATE_HOME/studyloop/studyloop.log, otherwise
// ~/.local/state/studyloop/studyloop.log.
func DefaultLogPath() string {
	if p := os.Getenv("STUDYLOOP_LOG"); p != "" {
		return p
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "studyloop", "studyloop.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "studyloop.log")
	}
	return filepath.Join(home, ".local", "state", "studyloop", "studyloop.log")
}

// New opens path for appending and returns a JSON logger writing to it.
// verbose lowers the level to debug. The returned close function syncs
// and closes the file.
func New(path string, verbose bool) (*zap.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(file),
		level,
	)

	logger := zap.New(core)
	closeFn := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, closeFn, nil
}
