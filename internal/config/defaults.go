package config

import (
	"github.com/spf13/viper"

	"github.com/napolitain/solver-bar/internal/economy"
	"github.com/napolitain/solver-bar/internal/models"
)

// RegisterDefaults registers the scenario defaults with viper. Zero is a
// valid scenario value, so these cannot be filled in after unmarshalling.
func RegisterDefaults(v *viper.Viper) {
	sc := DefaultScenarioConfig()
	v.SetDefault("scenario.time", sc.Time)
	v.SetDefault("scenario.metal", sc.Metal)
	v.SetDefault("scenario.metal_per_second", sc.MetalPerSecond)
	v.SetDefault("scenario.max_metal", sc.MaxMetal)
	v.SetDefault("scenario.energy", sc.Energy)
	v.SetDefault("scenario.energy_per_second", sc.EnergyPerSecond)
	v.SetDefault("scenario.max_energy", sc.MaxEnergy)
	v.SetDefault("scenario.builders", sc.Builders)
	v.SetDefault("scenario.buildings", sc.Buildings)
	v.SetDefault("scenario.converters", sc.Converters)

	// Every key needs a default for AutomaticEnv to reach it on Unmarshal
	v.SetDefault("run.mode", ModeSequence)
	v.SetDefault("run.objects", []string{})
	v.SetDefault("run.priorities", []string{})
	v.SetDefault("run.end_time", 0.0)
	v.SetDefault("run.target", "")
	v.SetDefault("run.compare_objects", []string{})
	v.SetDefault("run.fallback_object", models.Wind)
	v.SetDefault("run.base_energy_object", models.Wind)
	v.SetDefault("run.alternate_energy_object", models.Solar)
	v.SetDefault("run.catalog_path", "")
	v.SetDefault("run.min_add_time", economy.DefaultMinAddTime)
	v.SetDefault("run.converter_fraction", economy.DefaultConverterFraction)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "barcalc")
	v.SetDefault("metrics.output", "")
}

// SetDefaults sets default values for empty configuration fields
func SetDefaults(cfg *Config) {
	// Run defaults
	if cfg.Run.Mode == "" {
		cfg.Run.Mode = ModeSequence
	}
	if cfg.Run.FallbackObject == "" {
		cfg.Run.FallbackObject = models.Wind
	}
	if cfg.Run.BaseEnergyObject == "" {
		cfg.Run.BaseEnergyObject = models.Wind
	}
	if cfg.Run.AlternateEnergyObject == "" {
		cfg.Run.AlternateEnergyObject = models.Solar
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	// Metrics defaults
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "barcalc"
	}
}
