package sim

import (
	"io"
	"log"
	"os"
)

// Logger is the logger handed to frontends and the session.
type Logger = log.Logger

// NewLogger returns a stderr logger with a bracketed component prefix.
func NewLogger(component string) *Logger {
	return NewLoggerTo(os.Stderr, component)
}

// NewLoggerTo is NewLogger with an explicit sink.
func NewLoggerTo(w io.Writer, component string) *Logger {
	return log.New(w, "["+component+"] ", log.LstdFlags|log.Lmicroseconds)
}
