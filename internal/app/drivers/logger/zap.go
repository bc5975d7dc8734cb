package logger

import (
	"log"
	"strings"
	"tutorat-service/internal/app/config"
	"tutorat-service/internal/pkg/constvars"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds the logger of one binary; component tags every entry it writes.
func NewZapLogger(internalConfig *config.InternalConfig, component string) *zap.Logger {
	zapLogger, err := buildZapConfig(internalConfig, component).Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}

func buildZapConfig(internalConfig *config.InternalConfig, component string) zap.Config {
	logging := internalConfig.Logging

	logLevel, err := zapcore.ParseLevel(strings.ToLower(logging.Level))
	if err != nil {
		logLevel = zap.InfoLevel
	}

	outputPaths := []string{"stdout"}
	errorOutputPaths := []string{"stderr"}
	if internalConfig.App.Env == constvars.EnvironmentProduction {
		outputPaths = []string{logging.OutputFileName}
		errorOutputPaths = []string{"stderr", logging.OutputErrorFileName}
	}

	encoding := constvars.LoggerEncodingJSON
	levelEncoder := zapcore.LowercaseLevelEncoder
	if logging.Encoding == constvars.LoggerEncodingConsole {
		encoding = constvars.LoggerEncodingConsole
		levelEncoder = zapcore.CapitalLevelEncoder
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Development:      internalConfig.App.Env == constvars.EnvironmentDevelopment,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
		InitialFields: map[string]interface{}{
			"service":   constvars.AppServiceName,
			"component": component,
			"env":       internalConfig.App.Env,
		},
	}
}
