// Package logging configures the launcher's own diagnostic logger.
// It always writes to stderr-like writers; stdout belongs to the server protocol.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix tags every launcher log line.
const Prefix = "launcher"

// New returns a logger writing to w at the level implied by levelName.
func New(w io.Writer, levelName string) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           LevelFor(levelName),
		ReportTimestamp: true,
	})
}

// LevelFor maps a server log level name to the launcher's level.
// Only DEBUG-like names turn on launcher tracing; everything else keeps it at WARN.
func LevelFor(levelName string) log.Level {
	switch strings.ToUpper(strings.TrimSpace(levelName)) {
	case "DEBUG", "TRACE", "ALL", "FINE", "FINER", "FINEST":
		return log.DebugLevel
	case "ERROR", "FATAL", "OFF":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
