// Package logger holds the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init and defaults to
// info-level text output on stderr.
var Log = logrus.New()

// Options configures the global logger.
type Options struct {
	Level  string // logrus level name, "info" when empty or invalid
	Format string // "json" or "text"
	File   string // Log file path; stderr when empty
}

// Init configures the global logger. It returns a closer for the log file,
// which is a no-op when logging to stderr.
func Init(opts Options) (io.Closer, error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: opts.File != "",
		})
	}

	if opts.File == "" {
		Log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Log.SetOutput(f)
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
