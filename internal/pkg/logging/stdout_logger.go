package logging

import (
	"log/slog"
	"os"
)

// Logger is the logging seam used across the vending service. Args are
// key/value pairs in the slog convention.
type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

// StdoutLogger is the default logger for the vending binary and tests.
var StdoutLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))
