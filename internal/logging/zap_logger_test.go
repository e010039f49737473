package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewZapLoggerFrom(zap.New(core)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.DebugLevel)

	logger.Verbose("scanning %s", "akismet.zip")
	logger.Info("found %d entries", 3)
	logger.Error("failed: %v", "boom")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "scanning akismet.zip", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "found 3 entries", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "failed: boom", entries[2].Message)
}

func TestZapLogger_VerboseSuppressedAtInfo(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.InfoLevel)

	logger.Verbose("hidden")
	logger.Info("shown")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0].Message)
}

func TestNewZapLogger(t *testing.T) {
	logger, err := NewZapLogger(true)
	require.NoError(t, err)
	require.NotNil(t, logger)
	_ = logger.Sync()
}
