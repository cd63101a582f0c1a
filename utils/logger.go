package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	CRITICAL
)

func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}[l]
}

// ParseLogLevel maps a level name to its LogLevel. An unknown name is a fatal
// configuration error for callers, not a default.
func ParseLogLevel(name string) (level LogLevel, err error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		level = DEBUG
	case "INFO":
		level = INFO
	case "WARNING":
		level = WARNING
	case "ERROR":
		level = ERROR
	case "CRITICAL":
		level = CRITICAL
	default:
		err = fmt.Errorf("invalid log level: %s", name)
	}
	return
}

// Logger prints leveled messages to Out. The zero value is not usable; create
// with NewLogger.
type Logger struct {
	Level LogLevel
	Out   io.Writer
}

func NewLogger(level LogLevel) *Logger {
	return &Logger{
		Level: level,
		Out:   os.Stdout,
	}
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level < l.Level {
		return
	}
	fmt.Fprintf(l.Out, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(DEBUG, format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(INFO, format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(WARNING, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(ERROR, format, args...)
}
