// Package logging builds the process-wide log sink: a slog text handler
// writing to both standard output and a log file truncated on every run.
// The logger is constructed once by the entry point and passed to the
// components that need it.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultLogFile is the log file written next to the working directory.
const DefaultLogFile = "logs.log"

// New creates the process logger. With debug enabled the level drops to
// Debug. The returned closer releases the log file and must be called on
// shutdown.
func New(debug bool, logFile string) (*slog.Logger, func() error, error) {
	if logFile == "" {
		logFile = DefaultLogFile
	}

	f, err := os.Create(logFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", logFile, err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stdout, f), &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler), f.Close, nil
}
