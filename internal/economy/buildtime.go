package economy

import "math"

// DefaultMinAddTime is the fixed start latency added to every construction
const DefaultMinAddTime = 1.0

// BuildTimes holds the independent time estimates for one construction
type BuildTimes struct {
	Buildpower float64
	Energy     float64
	Metal      float64
	Total      float64

	// Stalled is set when some component can never complete (+Inf)
	Stalled bool
}

// EnergyStall reports whether energy, not buildpower, limits the build
func (bt BuildTimes) EnergyStall() bool {
	return bt.Energy > bt.Buildpower
}

// MetalStall reports whether metal, not buildpower, limits the build
func (bt BuildTimes) MetalStall() bool {
	return bt.Metal > bt.Buildpower
}

// WouldStall reports whether either resource limits the build
func (bt BuildTimes) WouldStall() bool {
	return bt.EnergyStall() || bt.MetalStall()
}

type buildTimeConfig struct {
	buildpower float64
	minAddTime float64
}

// BuildTimeOption tunes CalculateBuildTimes
type BuildTimeOption func(*buildTimeConfig)

// WithBuildpower overrides the buildpower applied to the construction
func WithBuildpower(bp float64) BuildTimeOption {
	return func(c *buildTimeConfig) {
		c.buildpower = bp
	}
}

// WithMinAddTime overrides the fixed start latency
func WithMinAddTime(t float64) BuildTimeOption {
	return func(c *buildTimeConfig) {
		c.minAddTime = t
	}
}

// CalculateBuildTimes estimates how long name takes to build from the
// current state. A component that can never complete is +Inf and marks
// the result as stalled.
func (s *State) CalculateBuildTimes(name string, opts ...BuildTimeOption) (BuildTimes, error) {
	p, err := s.Profile(name)
	if err != nil {
		return BuildTimes{}, err
	}

	cfg := buildTimeConfig{minAddTime: DefaultMinAddTime}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.buildpower <= 0 {
		cfg.buildpower = s.TotalBuildpower()
	}

	var bt BuildTimes
	switch {
	case p.BuildpowerCost == 0:
		bt.Buildpower = cfg.minAddTime
	case cfg.buildpower <= 0:
		bt.Buildpower = math.Inf(1)
	default:
		bt.Buildpower = p.BuildpowerCost/cfg.buildpower + cfg.minAddTime
	}

	bt.Energy = deficitTime(p.EnergyCost, s.Energy, s.EnergyPerSecond)
	bt.Metal = deficitTime(p.MetalCost, s.Metal, s.MetalPerSecond)

	bt.Total = math.Max(bt.Buildpower, math.Max(bt.Energy, bt.Metal))
	bt.Stalled = math.IsInf(bt.Total, 1)

	return bt, nil
}

// deficitTime is the time to accumulate cost from stock at rate
func deficitTime(cost, stock, rate float64) float64 {
	if cost <= stock {
		return 0
	}
	if rate <= 0 {
		return math.Inf(1)
	}
	return (cost - stock) / rate
}
