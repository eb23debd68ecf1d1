// Package logger provides logging utilities for the application.
package logger

import (
	"log"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// logger is the root logger. It discards everything until InitLogger runs.
var logger = zap.NewNop()

// Environment represents the application environment type.
type Environment string

const (
	// EnvironmentDevelopment represents the development environment.
	EnvironmentDevelopment Environment = "development"
	// EnvironmentProduction represents the production environment.
	EnvironmentProduction Environment = "production"
)

// LogLevel represents the logging level type.
type LogLevel string

const (
	// LogLevelDebug represents the debug logging level.
	LogLevelDebug LogLevel = "debug"
	// Info represents the info logging level.
	Info LogLevel = "info"
	// Warn represents the warn logging level.
	Warn LogLevel = "warn"
	// Error represents the error logging level.
	Error LogLevel = "error"
)

// InitLogger initializes the root logger and the per-module level table.
// levels maps dotted module names (e.g. "core.datelist") to level names.
func InitLogger(environment Environment, logLevel LogLevel, levels map[string]string) {
	var cfg zap.Config

	if environment == EnvironmentDevelopment {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// The root core lets everything through; Named applies the real level.
	cfg.Level.SetLevel(zapcore.DebugLevel)

	l, err := cfg.Build()
	if err != nil {
		log.Printf("Failed to initialize zap logger: %v", err)
		os.Exit(1)
	}
	logger = l
	defer func() { _ = logger.Sync() }()

	global := getZapLevel(string(logLevel))
	InitLevelConfig(levels, global)

	// Redirect standard log to zap
	zap.RedirectStdLog(Named("stdlog"))

	slogHandler := zapslog.NewHandler(Named("slog").Core())
	slog.SetDefault(slog.New(slogHandler))
}

// L returns the root logger filtered at the global level.
func L() *zap.Logger {
	return Named("")
}

// Named returns a child logger whose level comes from the hierarchical level table.
func Named(name string) *zap.Logger {
	level := GetLevelForName(name)
	l := logger
	if name != "" {
		l = l.Named(name)
	}
	return l.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &levelFilterCore{Core: core, level: level}
	}))
}

func getZapLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
