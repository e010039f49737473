package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// ZapLogger adapts a zap.Logger to the wppkg.Logger interface.
// Verbose maps to debug level and is only emitted when verbose is enabled.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger builds a JSON logger writing to stderr.
func NewZapLogger(verbose bool) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return NewZapLoggerFrom(logger), nil
}

// NewZapLoggerFrom wraps an existing zap logger.
func NewZapLoggerFrom(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger.Sugar()}
}

// Verbose logs detailed diagnostic information at debug level.
func (l *ZapLogger) Verbose(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// Info logs informational messages.
func (l *ZapLogger) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Error logs error messages.
func (l *ZapLogger) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

// Verify ZapLogger implements the interface at compile time
var _ wppkg.Logger = (*ZapLogger)(nil)
