// Package logger provides the small leveled logger used by configuration
// loading and the command line tool.
package logger

import (
	"io"
	"log"
	"os"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

type DefaultLogger struct {
	name  string
	debug bool
	out   *log.Logger
}

func NewDefaultLogger(name string) *DefaultLogger {
	return &DefaultLogger{name: name, out: log.New(os.Stderr, "", log.LstdFlags)}
}

// WithDebug enables Debug output, which is dropped by default.
func (d *DefaultLogger) WithDebug(enabled bool) *DefaultLogger {
	d.debug = enabled
	return d
}

// WithOutput redirects log lines to w.
func (d *DefaultLogger) WithOutput(w io.Writer) *DefaultLogger {
	d.out = log.New(w, "", log.LstdFlags)
	return d
}

func (d *DefaultLogger) Debug(format string, args ...any) {
	if d.debug {
		d.out.Printf("[DEBUG] "+d.name+" | "+format+"\n", args...)
	}
}

func (d *DefaultLogger) Info(format string, args ...any) {
	d.out.Printf("[INFO] "+d.name+" | "+format+"\n", args...)
}

func (d *DefaultLogger) Error(format string, args ...any) {
	d.out.Printf("[ERROR] "+d.name+" | "+format+"\n", args...)
}

type nop struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Error(string, ...any) {}
