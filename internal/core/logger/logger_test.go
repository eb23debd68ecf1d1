package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(&buf), zapcore.DebugLevel)

	original := logger
	logger = zap.New(core)
	t.Cleanup(func() { logger = original })
	return &buf
}

func TestNamed_LevelFiltering(t *testing.T) {
	buf := captureLogger(t)
	InitLevelConfig(map[string]string{"core.datelist": "warn"}, zapcore.InfoLevel)

	l := Named("core.datelist")
	require.NotNil(t, l)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, `"logger":"core.datelist"`)
}

func TestNamed_FilterSurvivesWith(t *testing.T) {
	buf := captureLogger(t)
	InitLevelConfig(map[string]string{"api": "error"}, zapcore.DebugLevel)

	l := Named("api").With(zap.String("request_id", "abc"))
	l.Info("dropped")
	l.Error("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, `"request_id":"abc"`)
}

func TestNamed_ModulesAreIndependent(t *testing.T) {
	buf := captureLogger(t)
	InitLevelConfig(map[string]string{
		"core.datelist": "debug",
		"api":           "error",
	}, zapcore.InfoLevel)

	Named("core.datelist").Debug("datelist debug")
	Named("api").Warn("api warn")
	Named("cmd").Info("cmd info")

	out := buf.String()
	assert.Contains(t, out, "datelist debug")
	assert.NotContains(t, out, "api warn")
	assert.Contains(t, out, "cmd info")
}

func TestInitLogger_Environments(t *testing.T) {
	original := logger
	t.Cleanup(func() { logger = original })

	assert.NotPanics(t, func() {
		InitLogger(EnvironmentDevelopment, LogLevelDebug, map[string]string{"core": "warn"})
	})
	assert.Equal(t, zapcore.WarnLevel, GetLevelForName("core.datelist"))
	assert.Equal(t, zapcore.DebugLevel, GetLevelForName("api"))

	assert.NotPanics(t, func() {
		InitLogger(EnvironmentProduction, Error, nil)
	})
	assert.Equal(t, zapcore.ErrorLevel, GetLevelForName("api"))
	assert.NotNil(t, L())
}

func TestGetZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, getZapLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, getZapLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, getZapLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, getZapLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, getZapLevel("unknown"))
}
