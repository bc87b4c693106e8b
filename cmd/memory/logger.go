package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/config"
)

// newLogger opens the log file for appending. The TUI owns the terminal,
// so when the file cannot be opened logs are discarded instead.
// The returned close function is always safe to call.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	w, closeFn := openLogFile(path)
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "memory",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

func openLogFile(path string) (io.Writer, func()) {
	noop := func() {}
	if path == "" || path == "-" {
		return io.Discard, noop
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return io.Discard, noop
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return io.Discard, noop
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return io.Discard, noop
	}
	return f, func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
}
