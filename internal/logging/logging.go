package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.RWMutex
	global  = slog.New(slog.NewJSONHandler(io.Discard, nil))
	logFile *os.File
)

// Setup opens <home>/logs/docsift.log and installs a JSON slog logger.
// The returned cleanup closes the file and resets the logger to
// discard.
func Setup(home string, verbose bool) (func() error, error) {
	dir := filepath.Join(home, "logs")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "docsift.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))

	mu.Lock()
	global = l
	logFile = f
	mu.Unlock()

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()
		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		global = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return cerr
	}
	return cleanup, nil
}

// L returns the process logger. Before Setup it discards.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
