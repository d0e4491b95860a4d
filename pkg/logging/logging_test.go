package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("ADVENT_STATE_DIR", "")
			t.Setenv("XDG_STATE_HOME", tempDir)
			t.Cleanup(func() { _ = Close() })

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "advent", "advent.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestLevelFor_NegativeIsWarn(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, LevelFor(-1))
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("ADVENT_STATE_DIR", "")
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "advent", "advent.log"), LogFilePath())
}

func TestGetLogger_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("almanac")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"almanac"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestSetupLogger_ReplacesLogFile(t *testing.T) {
	t.Setenv("ADVENT_STATE_DIR", t.TempDir())
	t.Cleanup(func() { _ = Close() })

	SetupLogger(0)
	first := logFile
	require.NotNil(t, first)

	SetupLogger(0)
	require.NotNil(t, logFile)
	assert.NotSame(t, first, logFile)
	assert.ErrorIs(t, first.Close(), os.ErrClosed, "previous handle is closed on re-setup")

	current := logFile
	require.NoError(t, Close())
	assert.Nil(t, logFile)
	assert.ErrorIs(t, current.Close(), os.ErrClosed)
	assert.NoError(t, Close(), "closing twice is a no-op")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "parse")
	require.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
}
