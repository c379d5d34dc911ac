package economy

import "math"

const (
	// ConverterRate is the energy spent per metal produced by a converter,
	// and the metal per second a single converter can produce
	ConverterRate = 70

	// DefaultConverterFraction is the share of max energy kept in reserve
	// before converters start draining the surplus
	DefaultConverterFraction = 0.5
)

// ConversionRegime describes how converters behaved during an advance
type ConversionRegime int

const (
	ConversionNone ConversionRegime = iota
	ConversionConverterLimited
	ConversionEnergyLimited
)

// String returns a string representation of the regime
func (r ConversionRegime) String() string {
	switch r {
	case ConversionNone:
		return "none"
	case ConversionConverterLimited:
		return "converter_limited"
	case ConversionEnergyLimited:
		return "energy_limited"
	default:
		return "unknown"
	}
}

// Conversion reports the metal gained and energy spent by converters
type Conversion struct {
	Regime ConversionRegime
	Excess float64
	Metal  float64
	Energy float64
}

type advanceConfig struct {
	energyDraw        float64
	converterFraction float64
}

// AdvanceOption tunes a single AdvanceTime call
type AdvanceOption func(*advanceConfig)

// WithEnergyDraw sets an extra energy consumption rate for the interval
func WithEnergyDraw(perSecond float64) AdvanceOption {
	return func(c *advanceConfig) {
		c.energyDraw = perSecond
	}
}

// WithConverterFraction sets the energy reserve fraction for converters
func WithConverterFraction(f float64) AdvanceOption {
	return func(c *advanceConfig) {
		c.converterFraction = f
	}
}

// AdvanceTime integrates income over delta seconds, runs the converters
// and caps the stockpiles. Non-positive deltas are ignored.
//
// The surplus check adds the interval's energy gain a second time, and the
// energy-limited regime converts at 1:1 rather than ConverterRate.
func (s *State) AdvanceTime(delta float64, opts ...AdvanceOption) Conversion {
	if delta <= 0 {
		return Conversion{}
	}

	cfg := advanceConfig{converterFraction: DefaultConverterFraction}
	for _, opt := range opts {
		opt(&cfg)
	}

	metalGain := s.MetalPerSecond * delta
	energyGain := (s.EnergyPerSecond - cfg.energyDraw) * delta

	s.Metal = math.Min(s.Metal+metalGain, s.MaxMetal)
	s.Energy += energyGain

	conv := Conversion{}
	excess := s.Energy + energyGain - cfg.converterFraction*s.MaxEnergy
	if excess > 0 {
		conv.Excess = excess
		capacity := float64(s.NumberConverters) * ConverterRate * delta
		if capacity > excess {
			// More converter capacity than surplus
			converted := math.Floor(excess / ConverterRate)
			conv.Regime = ConversionConverterLimited
			conv.Metal = converted
			conv.Energy = converted * ConverterRate
		} else {
			conv.Regime = ConversionEnergyLimited
			conv.Metal = float64(s.NumberConverters) * delta
			conv.Energy = float64(s.NumberConverters) * delta
		}
		s.Metal += conv.Metal
		s.Energy -= conv.Energy
	}

	// Converted metal cannot overflow storage either
	s.Metal = math.Min(s.Metal, s.MaxMetal)
	s.Energy = math.Min(s.Energy, s.MaxEnergy)
	s.Time += delta

	return conv
}
