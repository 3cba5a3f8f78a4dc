package cmd

import (
	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a zap logger writing to stderr behind the abstractlogger frontend
func newLogger(level string) (abstractlogger.Logger, error) {

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", configLogLevel)
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.OutputPaths = []string{"stderr"}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}

	return abstractlogger.NewZapLogger(zapLogger, abstractLevel(zapLevel)), nil
}

func abstractLevel(level zapcore.Level) abstractlogger.Level {
	switch level {
	case zapcore.DebugLevel:
		return abstractlogger.DebugLevel
	case zapcore.InfoLevel:
		return abstractlogger.InfoLevel
	case zapcore.WarnLevel:
		return abstractlogger.WarnLevel
	case zapcore.ErrorLevel:
		return abstractlogger.ErrorLevel
	case zapcore.PanicLevel, zapcore.DPanicLevel:
		return abstractlogger.PanicLevel
	default:
		return abstractlogger.FatalLevel
	}
}
