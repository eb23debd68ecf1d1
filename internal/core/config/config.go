// Package config loads application configuration with viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Server struct {
		Port int    `mapstructure:"port"`
		Host string `mapstructure:"host"`
	} `mapstructure:"server"`
	Log struct {
		Level  string    `mapstructure:"level"`
		Levels LogLevels `mapstructure:"levels"`
	} `mapstructure:"log"`
	App struct {
		Environment string `mapstructure:"environment"`
		Locale      string `mapstructure:"locale"`
	} `mapstructure:"app"`
	Schedule struct {
		Timezone string `mapstructure:"timezone"`
	} `mapstructure:"schedule"`
}

// Load reads the config file at cfgFile, or ./config.toml when cfgFile is empty.
// A missing default file is not an error; a missing explicit file is.
// Environment variables prefixed with CRONLIST_ override file values.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("CRONLIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return decode()
}

// Watch re-decodes the configuration whenever the loaded file changes and
// hands the result to onChange. Decode failures are passed as err.
func Watch(onChange func(cfg *Config, err error)) {
	viper.OnConfigChange(func(_ fsnotify.Event) {
		onChange(decode())
	})
	viper.WatchConfig()
}

func decode() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		LogLevelsDecodeHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Log.Levels = flattenLogLevels(viper.Get("log.levels"))
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("app.environment", "production")
	viper.SetDefault("app.locale", "en")
	viper.SetDefault("schedule.timezone", "Asia/Tokyo")
}
