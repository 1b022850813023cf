package log

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// DefaultLoggerFlag is the flag set used by loggers created in main.
const DefaultLoggerFlag = log.Ldate | log.Ltime

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

var levelNames = [...]string{
	LogLevelError: "error",
	LogLevelWarn:  "warn",
	LogLevelInfo:  "info",
	LogLevelDebug: "debug",
	LogLevelTrace: "trace",
}

func (level LogLevel) String() string {
	if level < 0 || int(level) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[level]
}

// ParseLogLevel parses a log level string into a LogLevel.
// Valid log levels are: error, warn, info, debug, trace.
func ParseLogLevel(level string) (LogLevel, error) {
	for l, name := range levelNames {
		if name == level {
			return LogLevel(l), nil
		}
	}
	return LogLevelError, fmt.Errorf("unknown log level: %s", level)
}

// entry is one JSON encoded log line.
type entry struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
}

// Logger writes leveled JSON entries through a standard library logger.
type Logger struct {
	mu     sync.RWMutex
	logger *log.Logger
	level  LogLevel
}

func New(out io.Writer, prefix string, flag int, level LogLevel) *Logger {
	return &Logger{
		logger: log.New(out, prefix, flag),
		level:  level,
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Level() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level > l.Level() {
		return
	}
	b, err := json.Marshal(&entry{
		Level: level.String(),
		Msg:   fmt.Sprintf(format, args...),
	})
	if err != nil {
		l.logger.Printf("failed to encode log entry: %v", err)
		return
	}
	l.logger.Print(string(b))
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelError, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogLevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, format, args...)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LogLevelTrace, format, args...)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New(os.Stdout, "", DefaultLoggerFlag, LogLevelInfo)
)

// SetDefaultLogger replaces the logger used by the package-level functions.
func SetDefaultLogger(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

func getDefaultLogger() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

func Info(format string, args ...interface{}) {
	getDefaultLogger().Info(format, args...)
}

func Error(format string, args ...interface{}) {
	getDefaultLogger().Error(format, args...)
}

func Warn(format string, args ...interface{}) {
	getDefaultLogger().Warn(format, args...)
}

func Debug(format string, args ...interface{}) {
	getDefaultLogger().Debug(format, args...)
}

func Trace(format string, args ...interface{}) {
	getDefaultLogger().Trace(format, args...)
}
