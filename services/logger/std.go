package logsvc

import (
	"io"
	"log"

	"github.com/trezcool/stockwise/core"
)

// StdLogger only writes to a std *log.Logger. Used by the admin CLI and in tests.
type StdLogger struct {
	RollbarLogger
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger) *StdLogger {
	return &StdLogger{RollbarLogger{std: std}}
}

// NewDiscardLogger drops everything.
func NewDiscardLogger() *StdLogger {
	return NewStdLogger(log.New(io.Discard, "", 0))
}

func (l StdLogger) Debug(msg string, args ...interface{}) { l.print("DEBUG", msg, args) }
func (l StdLogger) Info(msg string, args ...interface{})  { l.print("INFO", msg, args) }
func (l StdLogger) Warn(msg string, args ...interface{})  { l.print("WARN", msg, args) }
func (l StdLogger) Error(msg string, args ...interface{}) { l.print("ERROR", msg, args) }

func (l StdLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL", msg, args)
	l.std.Fatal(msg)
}
