// Package logging defines the minimal logger shared by the calculator packages.
package logging

import "log"

// Logger is implemented by anything that can receive leveled diagnostics
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// OrNop returns l, or a NopLogger when l is nil
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}

// StdLogger writes through the standard log package with a level prefix.
// Debug lines are only written when Verbose is set.
type StdLogger struct {
	Verbose bool
}

func (s StdLogger) Debugf(format string, args ...any) {
	if s.Verbose {
		log.Printf("DEBUG: "+format, args...)
	}
}
func (StdLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (StdLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (StdLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }
