package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the name of the rotating log file inside the log directory.
const FileName = "procwatch.log"

// Options configures the application logger.
type Options struct {
	Level string // debug|info|warn|error
	// Dir receives a rotating JSON log file when set.
	Dir string
	// Console mirrors human-readable output to stderr.
	Console bool
}

// New builds a zap logger writing JSON to a rotating file and, optionally,
// console output to stderr. With neither sink configured it logs to stderr.
func New(options Options) (*zap.Logger, error) {
	level, levelErr := ParseLevel(options.Level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	if options.Dir != "" {
		if err := os.MkdirAll(options.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(options.Dir, FileName),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(fileWriter), level))
	}
	if options.Console || len(cores) == 0 {
		consoleConfig := encoderConfig
		consoleConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig), zapcore.Lock(os.Stderr), level))
	}

	log := zap.New(zapcore.NewTee(cores...))
	if levelErr != nil {
		log.Warn("unknown log level, using info", zap.String("requested", options.Level))
	}
	return log, nil
}

// ParseLevel maps a case-insensitive level name to a zap level. An empty
// name means info. Unknown names return info and an error.
func ParseLevel(level string) (zap.AtomicLevel, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "" {
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	parsed, err := zapcore.ParseLevel(name)
	if err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel), fmt.Errorf("parse log level: %w", err)
	}
	return zap.NewAtomicLevelAt(parsed), nil
}
