package internal

import (
	"fmt"
	"log"
)

// Diagnostics receives warnings that are not errors, such as a core binding
// being overwritten during bootstrap.
type Diagnostics interface {
	Warnf(format string, args ...interface{})
}

// LogDiagnostics writes warnings to a logger.
type LogDiagnostics struct {
	*log.Logger
}

// Warnf logs a warning.
func (d LogDiagnostics) Warnf(format string, args ...interface{}) {
	d.Printf("warning: "+format, args...)
}

// A WarningList collects warnings in order.
type WarningList struct {
	Warnings []string
}

// Warnf records a warning.
func (w *WarningList) Warnf(format string, args ...interface{}) {
	w.Warnings = append(w.Warnings, fmt.Sprintf(format, args...))
}

// discard drops warnings.
type discard struct{}

func (discard) Warnf(string, ...interface{}) {}
