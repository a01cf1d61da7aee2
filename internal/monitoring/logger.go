// Package monitoring holds the diagnostic logger shared by the generator
// packages.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger so tests or embedding programs can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Stagef logs a message tagged with the pipeline stage that produced it,
// e.g. "[placed] 8 rooms, 264 points".
func Stagef(stage string, format string, v ...interface{}) {
	Logf("["+stage+"] "+format, v...)
}
