// Package logger provides the shared zap sugared logger for the application.
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.SugaredLogger
	once sync.Once

	initLevel  = "info"
	initFormat = "console"
)

// Init configures the global logger. Safe to call more than once; only the
// first call takes effect.
func Init(level, format string) {
	initLevel = level
	initFormat = format
	once.Do(build)
}

// Get returns the shared logger, initializing it with defaults if Init was
// never called (tests, small tools).
func Get() *zap.SugaredLogger {
	once.Do(build)
	return log
}

// Sync flushes buffered log entries. Call before the process exits.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}

func build() {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(initLevel)); err != nil {
		level = zapcore.InfoLevel
	}

	var cfg zap.Config
	if initFormat == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	log = zapLogger.Sugar()
}
