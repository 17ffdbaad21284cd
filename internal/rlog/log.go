// Package rlog is a thin wrapper over the standard library logger, giving
// the cmd/lsagctl commands a single place to format operational messages.
package rlog

import "log"

// Info logs an informational message.
func Info(format string, args ...any) {
	log.Printf("[info] "+format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...any) {
	log.Printf("[error] "+format, args...)
}

// Fatalf logs an error message and exits the process, mirroring
// log.Fatalf.
func Fatalf(format string, args ...any) {
	log.Fatalf("[fatal] "+format, args...)
}
