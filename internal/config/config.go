// Package config loads scenario and run settings from a YAML file, a .env
// file and BAR_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/napolitain/solver-bar/internal/economy"
)

// EnvPrefix prefixes every environment override (BAR_RUN_MODE, ...)
const EnvPrefix = "BAR"

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Scenario ScenarioConfig `mapstructure:"scenario"`
	Run      RunConfig      `mapstructure:"run"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (barcalc.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("barcalc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	RegisterDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - we'll use env vars and defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	cfg := &Config{
		Scenario: DefaultScenarioConfig(),
		Run: RunConfig{
			MinAddTime:        economy.DefaultMinAddTime,
			ConverterFraction: economy.DefaultConverterFraction,
		},
	}
	SetDefaults(cfg)
	return cfg
}
