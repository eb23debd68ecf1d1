package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.Levels)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, "Asia/Tokyo", cfg.Schedule.Timezone)
}

func TestLoad_OverrideDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load(writeConfig(t, `
[server]
port = 9000
host = "127.0.0.1"

[log]
level = "debug"

[app]
environment = "development"
locale = "ja"

[schedule]
timezone = "UTC"
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "ja", cfg.App.Locale)
	assert.Equal(t, "UTC", cfg.Schedule.Timezone)
}

func TestLoad_WithLogLevels(t *testing.T) {
	viper.Reset()

	cfg, err := Load(writeConfig(t, `
[log]
level = "info"

[log.levels]
"core.datelist" = "debug"
"api" = "warn"
`))
	require.NoError(t, err)

	assert.Len(t, cfg.Log.Levels, 2)
	assert.Equal(t, "debug", cfg.Log.Levels["core.datelist"])
	assert.Equal(t, "warn", cfg.Log.Levels["api"])
}

func TestLoad_WithMixedParentChildLogLevels(t *testing.T) {
	viper.Reset()

	cfg, err := Load(writeConfig(t, `
[log.levels]
"core.datelist" = "debug"
"api.dates" = "warn"
"api" = "info"
`))
	require.NoError(t, err)

	assert.Len(t, cfg.Log.Levels, 3)
	assert.Equal(t, "debug", cfg.Log.Levels["core.datelist"])
	assert.Equal(t, "warn", cfg.Log.Levels["api.dates"])
	assert.Equal(t, "info", cfg.Log.Levels["api"])
}

func TestLoad_WithNestedTables(t *testing.T) {
	viper.Reset()

	cfg, err := Load(writeConfig(t, `
[log.levels.core]
datelist = "debug"
evaluator = "warn"
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Levels["core.datelist"])
	assert.Equal(t, "warn", cfg.Log.Levels["core.evaluator"])
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("CRONLIST_SCHEDULE_TIMEZONE", "Europe/Paris")
	t.Setenv("CRONLIST_SERVER_PORT", "9999")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "Europe/Paris", cfg.Schedule.Timezone)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestLoad_ConfigFileNotFound(t *testing.T) {
	viper.Reset()

	cfg, err := Load("/nonexistent/path/config.toml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_DefaultFileMissingIsNotAnError(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", cfg.Schedule.Timezone)
}

func TestFlattenLogLevels(t *testing.T) {
	got := flattenLogLevels(map[string]interface{}{
		"api": map[string]interface{}{
			"dates": "warn",
		},
		"cmd":           "error",
		"core.datelist": "debug",
	})
	assert.Equal(t, LogLevels{
		"api.dates":     "warn",
		"cmd":           "error",
		"core.datelist": "debug",
	}, got)

	assert.Empty(t, flattenLogLevels(nil))
}

func TestWatch_ReloadsRewrittenFile(t *testing.T) {
	viper.Reset()

	path := writeConfig(t, `
[log]
level = "info"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, cfg.Log.Levels)

	var latest atomic.Pointer[Config]
	Watch(func(updated *Config, err error) {
		if err == nil {
			latest.Store(updated)
		}
	})

	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "warn"

[log.levels]
"core.datelist" = "debug"
`), 0o644))

	require.Eventually(t, func() bool {
		got := latest.Load()
		return got != nil && got.Log.Level == "warn" && got.Log.Levels["core.datelist"] == "debug"
	}, 5*time.Second, 20*time.Millisecond)
}
