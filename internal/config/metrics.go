package config

// MetricsConfig holds metrics collection configuration
type MetricsConfig struct {
	// Enabled controls whether simulation metrics are collected
	Enabled bool `mapstructure:"enabled"`

	// Namespace prefixes every metric name
	Namespace string `mapstructure:"namespace" validate:"required"`

	// Output is a file for the text exposition; empty writes to stdout
	Output string `mapstructure:"output"`
}
