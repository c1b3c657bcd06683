package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// AppLogger is the application logger, a logrus logger with structured JSON
// output and optional file output.
type AppLogger struct {
	*logrus.Logger
	file *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string
	FilePath string
	Service  string
}

// NewAppLogger creates a new application logger
func NewAppLogger(config Config) (*AppLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{Logger: l}

	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// InitFromConfig builds the logger from application config and installs it
// as the global logger.
func InitFromConfig(cfg *models.Config) (*AppLogger, error) {
	level := "info"
	if cfg.App.Debug {
		level = "debug"
	}
	l, err := NewAppLogger(Config{Level: level, Service: cfg.App.Name})
	if err != nil {
		return nil, err
	}
	SetGlobalLogger(l)
	return l, nil
}

func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.file = file
	al.SetOutput(file)
	return nil
}

// Log emits a message at the given level with structured fields.
func (al *AppLogger) Log(level logrus.Level, msg string, fields ...Field) {
	al.WithFields(toLogrusFields(fields)).Log(level, msg)
}

// Close releases the log file if one was opened.
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}
