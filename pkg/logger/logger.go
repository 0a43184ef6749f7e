package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *zap.Logger
var testMode bool

// SetTestMode sets the logger to test mode, which prevents os.Exit calls
func SetTestMode(enabled bool) {
	testMode = enabled
}

// Init initializes the logger at debug level, writing to logPath
func Init(logPath string) error {
	return InitWithLevel(logPath, "debug")
}

// InitWithLevel initializes the logger with the given output path and level.
// An empty path logs to stdout instead of a rotated file.
func InitWithLevel(logPath, level string) error {
	lvl := zapcore.DebugLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	var sink zapcore.WriteSyncer
	if logPath == "" {
		sink = zapcore.Lock(os.Stdout)
	} else {
		dir := filepath.Dir(logPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return err
		}

		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		sink,
		zap.NewAtomicLevelAt(lvl),
	)

	log = zap.New(core).With(zap.String("service", "ahudio-admin"))
	zap.ReplaceGlobals(log)

	return nil
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	if log != nil {
		log.Info(msg, fields...)
	}
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	if log != nil {
		log.Error(msg, fields...)
	}
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	if log != nil {
		log.Debug(msg, fields...)
	}
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	if log != nil {
		log.Warn(msg, fields...)
	}
}

// Fatal logs a fatal message and then calls os.Exit(1)
func Fatal(msg string, fields ...zap.Field) {
	if log != nil {
		if testMode {
			log.Error(msg, fields...)
		} else {
			log.Fatal(msg, fields...)
		}
	}
}

// Sync flushes any buffered log entries
func Sync() error {
	if log != nil {
		return log.Sync()
	}
	return nil
}
