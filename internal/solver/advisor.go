package solver

import (
	"fmt"
	"math"

	"github.com/napolitain/solver-bar/internal/economy"
	"github.com/napolitain/solver-bar/internal/events"
	"github.com/napolitain/solver-bar/internal/models"
)

// Status classifies how ready an economy is to build a target
type Status int

const (
	StatusNeedsBuildpower     Status = iota // Buildpower short, energy not the blocker
	StatusNeedsEnergy                       // Both short: fix energy first
	StatusReady                             // Build the target now
	StatusNeedsBuildpowerOnly               // Buildpower fine, energy short
	StatusStalled                           // No income can ever pay for the target
)

// String returns a string representation of the status
func (st Status) String() string {
	switch st {
	case StatusNeedsBuildpower:
		return "NeedsBuildpower"
	case StatusNeedsEnergy:
		return "NeedsEnergy"
	case StatusReady:
		return "Ready"
	case StatusNeedsBuildpowerOnly:
		return "NeedsBuildpowerOnly"
	case StatusStalled:
		return "Stalled"
	default:
		return "Unknown"
	}
}

// Advice is the advisor's answer for one target
type Advice struct {
	Target             string
	Status             Status
	RequiredBuildpower float64
	RequiredEnergy     float64
	EnergyRatio        float64
	BuildpowerRatio    float64

	// UsableBuildpower is what current stockpiles and incomes keep busy
	// on the target
	UsableBuildpower float64

	// Suggestion is the object to build next
	Suggestion string

	// Energy holds the nested advice for the base energy producer
	Energy *Advice
}

// Advisor recommends what to build next toward a target
type Advisor struct {
	sink          events.Sink
	baseEnergy    string
	alternate     string
	cheapestBuild string
}

// AdvisorOption configures an Advisor
type AdvisorOption func(*Advisor)

// WithBaseEnergy sets the base energy producer
func WithBaseEnergy(name string) AdvisorOption {
	return func(a *Advisor) {
		if name != "" {
			a.baseEnergy = name
		}
	}
}

// WithAlternateEnergy sets the producer suggested when the base one is
// not ready either
func WithAlternateEnergy(name string) AdvisorOption {
	return func(a *Advisor) {
		if name != "" {
			a.alternate = name
		}
	}
}

// WithAdvisorSink sets the event sink
func WithAdvisorSink(sink events.Sink) AdvisorOption {
	return func(a *Advisor) {
		if sink != nil {
			a.sink = sink
		}
	}
}

// NewAdvisor creates an advisor for catalog
func NewAdvisor(catalog *models.Catalog, opts ...AdvisorOption) *Advisor {
	a := &Advisor{
		sink:       events.Discard,
		baseEnergy: models.Wind,
		alternate:  models.Solar,
	}
	a.cheapestBuild, _ = catalog.CheapestBuilder()
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Recommend classifies state against target. Only a non-base target
// recurses, and only into the base energy producer, so the recursion is
// at most one level deep.
func (a *Advisor) Recommend(state *economy.State, target string) (Advice, error) {
	bt, err := state.CalculateBuildTimes(target)
	if err != nil {
		return Advice{}, err
	}
	if bt.Stalled {
		advice := Advice{Target: target, Status: StatusStalled}
		if math.IsInf(bt.Energy, 1) && target != a.baseEnergy {
			advice.Suggestion = a.baseEnergy
		}
		a.emit(state, advice)
		return advice, nil
	}

	usable, err := state.RequiredBuildpower(target)
	if err != nil {
		return Advice{}, err
	}

	optimal, err := state.OptimalBuildpower(target)
	if err != nil {
		return Advice{}, err
	}
	requiredBP := math.RoundToEven(optimal)

	requiredEnergy, err := state.RequiredEnergyForBuildpower(target, requiredBP)
	if err != nil {
		return Advice{}, err
	}
	requiredEnergy = math.RoundToEven(requiredEnergy)

	advice := Advice{
		Target:             target,
		Status:             StatusNeedsBuildpower,
		RequiredBuildpower: requiredBP,
		RequiredEnergy:     requiredEnergy,
		EnergyRatio:        round2(ratio(state.EnergyPerSecond, requiredEnergy)),
		BuildpowerRatio:    round2(ratio(state.TotalBuildpower(), requiredBP)),
		UsableBuildpower:   usable,
		Suggestion:         a.cheapestBuild,
	}

	energyShort := advice.EnergyRatio < 1
	buildpowerOK := advice.BuildpowerRatio >= 1

	if energyShort && target != a.baseEnergy {
		nested, err := a.Recommend(state, a.baseEnergy)
		if err != nil {
			return Advice{}, fmt.Errorf("advising %s: %w", a.baseEnergy, err)
		}
		advice.Status = StatusNeedsEnergy
		advice.Energy = &nested
		if nested.Status == StatusReady {
			advice.Suggestion = a.baseEnergy
		} else {
			advice.Suggestion = a.alternate
		}
	}

	switch {
	case buildpowerOK && !energyShort:
		advice.Status = StatusReady
		advice.Suggestion = target
	case buildpowerOK && energyShort:
		advice.Status = StatusNeedsBuildpowerOnly
		advice.Suggestion = a.baseEnergy
	}

	a.emit(state, advice)
	return advice, nil
}

func (a *Advisor) emit(state *economy.State, advice Advice) {
	a.sink.Emit(events.Event{
		Type:     events.EventAdvice,
		Time:     state.Time,
		Object:   advice.Target,
		Snapshot: state.Snapshot(),
		Message: fmt.Sprintf("towards %s: %s (energy ratio %.2f, buildpower ratio %.2f), build %s",
			advice.Target, advice.Status, advice.EnergyRatio, advice.BuildpowerRatio, advice.Suggestion),
	})
}

// ratio treats a zero requirement as fully satisfied
func ratio(have, need float64) float64 {
	if need == 0 {
		return math.Inf(1)
	}
	return have / need
}

func round2(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.RoundToEven(x*100) / 100
}
