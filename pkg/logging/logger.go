package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger provides leveled logging for the harness. The abstraction allows
// swapping implementations without touching callers.
type Logger interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
}

// defaultLogger implements Logger on the standard log package. Every level
// writes to stderr: stdout carries the single measurement line and nothing
// else.
type defaultLogger struct {
	errorLogger *log.Logger
	warnLogger  *log.Logger
	infoLogger  *log.Logger
	debugLogger *log.Logger
}

// NewDefaultLogger creates a logger writing all levels to stderr.
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr)
}

// NewLogger creates a logger writing all levels to w.
func NewLogger(w io.Writer) Logger {
	return &defaultLogger{
		errorLogger: log.New(w, "[ERROR] ", log.LstdFlags|log.Lmicroseconds),
		warnLogger:  log.New(w, "[WARN] ", log.LstdFlags|log.Lmicroseconds),
		infoLogger:  log.New(w, "[INFO] ", log.LstdFlags|log.Lmicroseconds),
		debugLogger: log.New(w, "[DEBUG] ", log.LstdFlags|log.Lmicroseconds),
	}
}

func (l *defaultLogger) Error(args ...interface{}) {
	l.errorLogger.Output(2, fmt.Sprint(args...))
}

func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	l.errorLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *defaultLogger) Warn(args ...interface{}) {
	l.warnLogger.Output(2, fmt.Sprint(args...))
}

func (l *defaultLogger) Warnf(format string, args ...interface{}) {
	l.warnLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *defaultLogger) Info(args ...interface{}) {
	l.infoLogger.Output(2, fmt.Sprint(args...))
}

func (l *defaultLogger) Infof(format string, args ...interface{}) {
	l.infoLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *defaultLogger) Debug(args ...interface{}) {
	l.debugLogger.Output(2, fmt.Sprint(args...))
}

func (l *defaultLogger) Debugf(format string, args ...interface{}) {
	l.debugLogger.Output(2, fmt.Sprintf(format, args...))
}
