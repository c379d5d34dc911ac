package economy

import (
	"fmt"
	"math"
)

// OptimalBuildpower is the buildpower at which metal income and
// buildpower run out for name at the same instant
func (s *State) OptimalBuildpower(name string) (float64, error) {
	p, err := s.Profile(name)
	if err != nil {
		return 0, err
	}
	if p.MetalCost == 0 {
		return math.Inf(1), nil
	}
	return p.BuildpowerCost * s.MetalPerSecond / p.MetalCost, nil
}

// RequiredEnergyForBuildpower is the energy income needed to keep bp
// buildpower busy on name without an energy stall
func (s *State) RequiredEnergyForBuildpower(name string, bp float64) (float64, error) {
	p, err := s.Profile(name)
	if err != nil {
		return 0, err
	}
	if p.BuildpowerCost == 0 || p.EnergyCost == 0 {
		return 0, nil
	}
	return p.EnergyCost * bp / p.BuildpowerCost, nil
}

// RequiredBuildpower estimates the buildpower the current stockpiles and
// incomes can keep busy on name. A deficit that no income closes returns
// ErrStalledConstruction.
func (s *State) RequiredBuildpower(name string) (float64, error) {
	p, err := s.Profile(name)
	if err != nil {
		return 0, err
	}

	metalMult := ratio(s.Metal, p.MetalCost)
	energyMult := ratio(s.Energy, p.EnergyCost)

	if metalMult > 1 && energyMult > 1 {
		return s.TotalBuildpower() * math.Min(metalMult, energyMult), nil
	}

	required := math.Inf(1)
	for _, r := range []struct {
		resource string
		cost     float64
		stock    float64
		rate     float64
	}{
		{"metal", p.MetalCost, s.Metal, s.MetalPerSecond},
		{"energy", p.EnergyCost, s.Energy, s.EnergyPerSecond},
	} {
		deficit := r.cost - r.stock
		if deficit <= 0 {
			continue // covered by stock, not a constraint
		}
		if r.rate <= 0 {
			return 0, fmt.Errorf("%w: %s has no %s income", ErrStalledConstruction, name, r.resource)
		}
		required = math.Min(required, p.BuildpowerCost*r.rate/deficit)
	}

	if math.IsInf(required, 1) {
		// Both exactly covered
		return s.TotalBuildpower() * math.Min(metalMult, energyMult), nil
	}
	return required, nil
}

func ratio(stock, cost float64) float64 {
	if cost == 0 {
		return math.Inf(1)
	}
	return stock / cost
}
