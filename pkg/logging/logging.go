package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/husi/advent-of-tdd/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	fileMu sync.Mutex
	// logFile is the handle the global logger currently writes to
	logFile *os.File
)

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}

	writers := []io.Writer{consoleWriter}

	logPath := LogFilePath()
	logFileHandle, err := setupLogFile(logPath)
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	// Every invocation gets its own id so interleaved runs can be told apart in the file
	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()

	replaceLogFile(logFileHandle)

	if err != nil {
		log.Warn().Err(err).Str("path", logPath).Msg("Failed to create log file, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger initialized")
}

// replaceLogFile swaps in the handle of a new setup and closes the previous one
func replaceLogFile(f *os.File) {
	fileMu.Lock()
	defer fileMu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
}

// Close stops writing to the log file. Console output continues.
func Close() error {
	fileMu.Lock()
	defer fileMu.Unlock()

	if logFile == nil {
		return nil
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	err := logFile.Close()
	logFile = nil
	return err
}

// LevelFor maps the -v count to a zerolog level
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return paths.New().LogFilePath()
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
