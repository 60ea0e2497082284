package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerAdapter struct {
	logger *zap.Logger
}

func NewLoggerAdapter(env string) *LoggerAdapter {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	return &LoggerAdapter{logger: zapLogger}
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, toZapFields(fields)...)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, toZapFields(fields)...)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, toZapFields(fields)...)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, toZapFields(fields)...)
}

func (l *LoggerAdapter) Sync() {
	_ = l.logger.Sync()
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zapFields
}
