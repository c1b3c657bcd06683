package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalLogger *AppLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance, falling back to a
// default logger when none was installed.
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		l, _ := NewAppLogger(Config{Level: "info"})
		return l
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Log(logrus.InfoLevel, msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Log(logrus.WarnLevel, msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Log(logrus.ErrorLevel, msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Log(logrus.DebugLevel, msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrusFields(fields)).Fatal(msg)
}
