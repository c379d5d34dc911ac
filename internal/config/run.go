package config

// Run modes
const (
	ModeSequence   = "sequence"
	ModePriorities = "priorities"
	ModeAdvise     = "advise"
	ModeCompare    = "compare"
)

// RunConfig selects what the calculator does with the scenario
type RunConfig struct {
	Mode string `mapstructure:"mode" validate:"required,oneof=sequence priorities advise compare"`

	// Objects is the build sequence for sequence, advise and compare
	Objects []string `mapstructure:"objects" validate:"dive,required"`

	// Priorities is the ordered list for priorities mode
	Priorities []string `mapstructure:"priorities" validate:"dive,required"`
	EndTime    float64  `mapstructure:"end_time" validate:"gte=0"`

	// Target is the object the advisor works toward
	Target string `mapstructure:"target"`

	// CompareObjects is the second sequence in compare mode
	CompareObjects []string `mapstructure:"compare_objects" validate:"dive,required"`

	FallbackObject        string  `mapstructure:"fallback_object" validate:"required"`
	BaseEnergyObject      string  `mapstructure:"base_energy_object" validate:"required"`
	AlternateEnergyObject string  `mapstructure:"alternate_energy_object" validate:"required"`
	CatalogPath           string  `mapstructure:"catalog_path"`
	MinAddTime            float64 `mapstructure:"min_add_time" validate:"gte=0"`
	ConverterFraction     float64 `mapstructure:"converter_fraction" validate:"gte=0,lte=1"`
}
