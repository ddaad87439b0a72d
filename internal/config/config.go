package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for an ndm invocation.
// Values are populated from .ndm.yaml, NDM_* env vars, and CLI flags.
type Config struct {
	PipPath        string `mapstructure:"pip_path"`
	PipCompilePath string `mapstructure:"pip_compile_path"`
	PipSyncPath    string `mapstructure:"pip_sync_path"`
	PythonPath     string `mapstructure:"python_path"`
	Verbose        bool   `mapstructure:"verbose"`
	EventLog       string `mapstructure:"event_log"`
	ExactRemove    bool   `mapstructure:"exact_remove"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("pip_path", "pip")
	viper.SetDefault("pip_compile_path", "pip-compile")
	viper.SetDefault("pip_sync_path", "pip-sync")
	viper.SetDefault("python_path", "python3")
	viper.SetDefault("verbose", false)
	viper.SetDefault("event_log", "")
	viper.SetDefault("exact_remove", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
