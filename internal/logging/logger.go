package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "KWFINDER_LOG_LEVEL"

// Options controls where and how verbosely the logger writes.
type Options struct {
	Level string // debug, info, warn, error; empty means check the environment
	File  string // Log file path; empty means stderr
}

// ParseLevel converts a level name to a zap level.
// Unknown names fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize creates a new logger with the specified options.
// If opts.Level is empty, it checks the KWFINDER_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
//
// The wizard owns the terminal while it runs, so a log file should be
// configured when logging an interactive session.
func Initialize(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	if opts.File != "" {
		output = opts.File
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if opts.File == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the KWFINDER_LOG_LEVEL
// environment variable, writing to stderr.
func InitializeFromEnv() error {
	return Initialize(Options{})
}

// SetLogger replaces the global logger (used by tests to observe output)
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTransition logs a wizard stage change
func LogTransition(from, to string, generation uint64) {
	Debug("Wizard transition",
		zap.String("from", from),
		zap.String("to", to),
		zap.Uint64("generation", generation),
	)
}

// LogLookupStart logs the start of a suggestion lookup
func LogLookupStart(requestID, provider string, seeds []string) {
	Info("Suggestion lookup started",
		zap.String("request_id", requestID),
		zap.String("provider", provider),
		zap.Strings("seeds", seeds),
	)
}

// LogLookup logs the outcome of a suggestion lookup
func LogLookup(requestID, provider string, count int, elapsed time.Duration, err error) {
	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("provider", provider),
		zap.Int("suggestions", count),
		zap.Duration("elapsed", elapsed),
	}

	if err != nil {
		Warn("Suggestion lookup failed", append(fields, zap.Error(err))...)
		return
	}

	Info("Suggestion lookup completed", fields...)
}

// LogStaleResult logs a lookup result discarded because the wizard moved on
func LogStaleResult(requestID string, requestGeneration, currentGeneration uint64) {
	Debug("Discarding stale lookup result",
		zap.String("request_id", requestID),
		zap.Uint64("request_generation", requestGeneration),
		zap.Uint64("current_generation", currentGeneration),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
