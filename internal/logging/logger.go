package logging

// Structured logging for robotbench

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

// ParseLevel maps a config string to a LogLevel. Unknown values fall back to info.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "verbose":
		return LogLevelVerbose
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// Logger provides structured logging
type Logger struct {
	mu       sync.Mutex
	level    LogLevel
	file     *os.File
	fileLog  *log.Logger
	stdout   *log.Logger
	stderr   *log.Logger
	format   string
	logEvery int
	counter  int
}

// NewLogger creates a new logger with text format and no sampling
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	return NewLoggerWithOptions(level, logFile, "text", 1)
}

// NewLoggerWithOptions creates a logger with an output format ("text" or "json")
// and a console sampling rate (log every Nth message; 0 means every message).
func NewLoggerWithOptions(level LogLevel, logFile, format string, logEvery int) (*Logger, error) {
	if format == "" {
		format = "text"
	}
	if logEvery <= 0 {
		logEvery = 1
	}
	l := &Logger{
		level:    level,
		stdout:   log.New(os.Stdout, "", 0),
		stderr:   log.New(os.Stderr, "", 0),
		format:   format,
		logEvery: logEvery,
	}

	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}

	return l, nil
}

// Close closes the logger and flushes all data
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	if l.GetLevel() >= LogLevelError {
		l.write(fmt.Sprintf(format, v...), "error")
	}
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	if l.GetLevel() >= LogLevelInfo {
		l.write(fmt.Sprintf(format, v...), "info")
	}
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.GetLevel() >= LogLevelVerbose {
		l.write(fmt.Sprintf(format, v...), "verbose")
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.GetLevel() >= LogLevelDebug {
		l.write(fmt.Sprintf(format, v...), "debug")
	}
}

// write writes a message to the appropriate outputs. The log file, when
// configured, receives every message; console output is sampled by logEvery
// and only emitted at verbose/debug levels (errors always go to stderr).
func (l *Logger) write(msg, label string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counter++

	line := l.formatLine(msg, label)

	if l.fileLog != nil {
		l.fileLog.Println(line)
	} else if l.counter%l.logEvery != 0 {
		return
	}

	if label == "error" {
		l.stderr.Println(line)
	} else if l.level >= LogLevelVerbose {
		l.stdout.Println(line)
	}
}

func (l *Logger) formatLine(msg, label string) string {
	if l.format == "json" {
		encoded, err := json.Marshal(struct {
			Level   string `json:"level"`
			Message string `json:"message"`
		}{Level: label, Message: msg})
		if err == nil {
			return string(encoded)
		}
	}
	return strings.ToUpper(label) + ": " + msg
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogInvocation logs an assembled runner command line for a profile
func (l *Logger) LogInvocation(profile string, args []string) {
	l.Verbose("Assembled %s command: %s", profile, strings.Join(args, " "))
}

// LogStartup logs startup information
func (l *Logger) LogStartup(profile, workspaceRoot, settingsPath string) {
	l.Info("Starting robotbench workbench")
	l.Verbose("  Profile: %s", profile)
	l.Verbose("  Workspace: %s", workspaceRoot)
	l.Verbose("  Settings: %s", settingsPath)
}
