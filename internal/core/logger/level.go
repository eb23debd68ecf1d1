package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// levelCache maps logger name to its resolved zapcore.Level.
var levelCache sync.Map

var (
	levelConfigMu  sync.RWMutex
	levelConfigMap map[string]string
	globalLevel    = zapcore.InfoLevel
)

// InitLevelConfig installs the per-module level table and the global fallback level.
// It drops every cached lookup.
func InitLevelConfig(levels map[string]string, defaultLevel zapcore.Level) {
	levelConfigMu.Lock()
	defer levelConfigMu.Unlock()
	levelConfigMap = levels
	globalLevel = defaultLevel
	levelCache.Clear()
}

// GetLevelForName returns the level for a dotted logger name.
// Lookups are case sensitive and cached until the next InitLevelConfig.
func GetLevelForName(name string) zapcore.Level {
	if cached, ok := levelCache.Load(name); ok {
		return cached.(zapcore.Level)
	}

	// Held across the Store so InitLevelConfig cannot clear the cache in between.
	levelConfigMu.RLock()
	defer levelConfigMu.RUnlock()
	level := computeLevelForName(name)
	levelCache.Store(name, level)
	return level
}

// computeLevelForName tries an exact match, then each dotted parent, then the global level.
// Callers hold levelConfigMu.
func computeLevelForName(name string) zapcore.Level {
	if len(levelConfigMap) == 0 || name == "" {
		return globalLevel
	}

	if levelStr, ok := levelConfigMap[name]; ok {
		if level, err := ParseLevel(levelStr); err == nil {
			return level
		}
	}

	parts := strings.Split(name, ".")
	for i := len(parts) - 1; i > 0; i-- {
		prefix := strings.Join(parts[:i], ".")
		if levelStr, ok := levelConfigMap[prefix]; ok {
			if level, err := ParseLevel(levelStr); err == nil {
				return level
			}
		}
	}

	return globalLevel
}

// ParseLevel parses a level name, ignoring case. "warning" is accepted for warn.
func ParseLevel(levelStr string) (zapcore.Level, error) {
	levelStr = strings.ToLower(levelStr)
	if levelStr == "warning" {
		levelStr = "warn"
	}
	var level zapcore.Level
	err := level.UnmarshalText([]byte(levelStr))
	return level, err
}
