package config

import "github.com/napolitain/solver-bar/internal/economy"

// ScenarioConfig is the starting economy
type ScenarioConfig struct {
	Time            float64  `mapstructure:"time" validate:"gte=0"`
	Metal           float64  `mapstructure:"metal" validate:"gte=0"`
	MetalPerSecond  float64  `mapstructure:"metal_per_second"`
	MaxMetal        float64  `mapstructure:"max_metal" validate:"gt=0,gtefield=Metal"`
	Energy          float64  `mapstructure:"energy" validate:"gte=0"`
	EnergyPerSecond float64  `mapstructure:"energy_per_second"`
	MaxEnergy       float64  `mapstructure:"max_energy" validate:"gt=0,gtefield=Energy"`
	Builders        []string `mapstructure:"builders" validate:"dive,required"`
	Buildings       []string `mapstructure:"buildings" validate:"dive,required"`
	Converters      int      `mapstructure:"converters" validate:"gte=0"`
}

// DefaultScenarioConfig mirrors economy.DefaultScenario
func DefaultScenarioConfig() ScenarioConfig {
	sc := economy.DefaultScenario()
	return ScenarioConfig{
		Time:            sc.Time,
		Metal:           sc.Metal,
		MetalPerSecond:  sc.MetalPerSecond,
		MaxMetal:        sc.MaxMetal,
		Energy:          sc.Energy,
		EnergyPerSecond: sc.EnergyPerSecond,
		MaxEnergy:       sc.MaxEnergy,
		Builders:        sc.Builders,
		Buildings:       sc.Buildings,
		Converters:      sc.NumberConverters,
	}
}

// Economy converts the scenario for economy.NewState
func (c ScenarioConfig) Economy() economy.Scenario {
	return economy.Scenario{
		Time:             c.Time,
		Metal:            c.Metal,
		MetalPerSecond:   c.MetalPerSecond,
		MaxMetal:         c.MaxMetal,
		Energy:           c.Energy,
		EnergyPerSecond:  c.EnergyPerSecond,
		MaxEnergy:        c.MaxEnergy,
		Builders:         append([]string{}, c.Builders...),
		Buildings:        append([]string{}, c.Buildings...),
		NumberConverters: c.Converters,
	}
}
