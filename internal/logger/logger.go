package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pageza/munchai/backend/config"
)

// New builds a zap logger for the given level and environment. Unknown
// levels fall back to info.
func New(level string, env config.Environment) (*zap.Logger, error) {
	return buildConfig(level, env).Build()
}

func buildConfig(level string, env config.Environment) zap.Config {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if env == config.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.CallerKey = "caller"

	return cfg
}

// Must is New for process startup, where a broken logger is fatal.
func Must(level string, env config.Environment) *zap.Logger {
	log, err := New(level, env)
	if err != nil {
		panic(err)
	}
	return log
}
