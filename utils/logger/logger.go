package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

// Init builds the global Zap logger. Production gets JSON output with
// ISO8601 timestamps; anything else gets the colored console encoder.
func Init(environment string) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return err
	}

	globalLogger = built
	return nil
}

// Get returns the global logger, building a production fallback when Init
// was never called (tests, one-off tools).
func Get() *zap.Logger {
	if globalLogger == nil {
		globalLogger, _ = zap.NewProduction()
	}
	return globalLogger
}

// Close flushes buffered log entries.
func Close() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

// Fatal logs and exits the process.
func Fatal(msg string, fields ...zap.Field) {
	Get().Fatal(msg, fields...)
}
