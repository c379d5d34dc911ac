package economy

import (
	"fmt"

	"github.com/napolitain/solver-bar/internal/models"
)

// Construction is one completed entry of the construction history
type Construction struct {
	Name        string
	CompletedAt float64
}

// Scenario holds the initial values of a simulation
type Scenario struct {
	Time             float64
	Metal            float64
	MetalPerSecond   float64
	MaxMetal         float64
	Energy           float64
	EnergyPerSecond  float64
	MaxEnergy        float64
	Builders         []string
	Buildings        []string
	NumberConverters int
}

// DefaultScenario returns the standard match opening
func DefaultScenario() Scenario {
	return Scenario{
		Time:            3,
		Metal:           1000,
		MetalPerSecond:  2,
		MaxMetal:        1000,
		Energy:          1000,
		EnergyPerSecond: 25,
		MaxEnergy:       1000,
		Builders:        []string{models.Commander},
		Buildings:       []string{},
	}
}

// State is the complete simulation state of one economy
type State struct {
	catalog *models.Catalog

	Time float64 // Seconds since match start

	Metal          float64
	MetalPerSecond float64
	MaxMetal       float64

	Energy          float64
	EnergyPerSecond float64
	MaxEnergy       float64

	Builders  []string // Buildpower producers, in construction order
	Buildings []string // Everything else, in construction order
	History   []Construction

	NumberConverters int
}

// NewState creates a state from a scenario. Fields are taken as given,
// including zeros; start from DefaultScenario to override only some.
func NewState(catalog *models.Catalog, sc Scenario) *State {
	s := &State{
		catalog:          catalog,
		Time:             sc.Time,
		Metal:            sc.Metal,
		MetalPerSecond:   sc.MetalPerSecond,
		MaxMetal:         sc.MaxMetal,
		Energy:           sc.Energy,
		EnergyPerSecond:  sc.EnergyPerSecond,
		MaxEnergy:        sc.MaxEnergy,
		Builders:         append([]string{}, sc.Builders...),
		Buildings:        append([]string{}, sc.Buildings...),
		History:          make([]Construction, 0),
		NumberConverters: sc.NumberConverters,
	}
	return s
}

// NewDefaultState creates a state with the default scenario
func NewDefaultState(catalog *models.Catalog) *State {
	return NewState(catalog, DefaultScenario())
}

// Catalog returns the catalog the state resolves names against
func (s *State) Catalog() *models.Catalog {
	return s.catalog
}

// Profile looks up an object, failing with ErrUnknownObject
func (s *State) Profile(name string) (*models.ObjectProfile, error) {
	p, ok := s.catalog.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObject, name)
	}
	return p, nil
}

// Clone creates a deep copy of the state. The catalog is shared since it
// is immutable.
func (s *State) Clone() *State {
	clone := &State{
		catalog:          s.catalog,
		Time:             s.Time,
		Metal:            s.Metal,
		MetalPerSecond:   s.MetalPerSecond,
		MaxMetal:         s.MaxMetal,
		Energy:           s.Energy,
		EnergyPerSecond:  s.EnergyPerSecond,
		MaxEnergy:        s.MaxEnergy,
		Builders:         make([]string, len(s.Builders)),
		Buildings:        make([]string, len(s.Buildings)),
		History:          make([]Construction, len(s.History)),
		NumberConverters: s.NumberConverters,
	}

	copy(clone.Builders, s.Builders)
	copy(clone.Buildings, s.Buildings)
	copy(clone.History, s.History)

	return clone
}

// TotalBuildpower sums the buildpower income of all builders.
// Names missing from the catalog contribute nothing.
func (s *State) TotalBuildpower() float64 {
	total := 0.0
	for _, name := range s.Builders {
		if p, ok := s.catalog.Get(name); ok {
			total += p.BuildpowerIncome
		}
	}
	return total
}

// Commit records a finished construction and applies its income
func (s *State) Commit(p *models.ObjectProfile) {
	if p.IsBuilder() {
		s.Builders = append(s.Builders, p.Name)
	} else {
		s.Buildings = append(s.Buildings, p.Name)
	}
	s.History = append(s.History, Construction{Name: p.Name, CompletedAt: s.Time})

	s.MetalPerSecond += p.MetalIncome
	s.EnergyPerSecond += p.EnergyIncome
}

// Validate checks that the state only references known objects and that
// stockpiles respect their caps
func (s *State) Validate() error {
	if s.MaxMetal <= 0 || s.MaxEnergy <= 0 {
		return fmt.Errorf("storage caps must be positive (metal=%v, energy=%v)", s.MaxMetal, s.MaxEnergy)
	}
	if s.Metal > s.MaxMetal {
		return fmt.Errorf("metal %v exceeds cap %v", s.Metal, s.MaxMetal)
	}
	if s.Energy > s.MaxEnergy {
		return fmt.Errorf("energy %v exceeds cap %v", s.Energy, s.MaxEnergy)
	}
	if s.NumberConverters < 0 {
		return fmt.Errorf("converter count %d is negative", s.NumberConverters)
	}
	for _, name := range s.Builders {
		if !s.catalog.Has(name) {
			return fmt.Errorf("builder: %w: %s", ErrUnknownObject, name)
		}
	}
	for _, name := range s.Buildings {
		if !s.catalog.Has(name) {
			return fmt.Errorf("building: %w: %s", ErrUnknownObject, name)
		}
	}
	return nil
}

// Snapshot is a value copy of the scalar economy figures
type Snapshot struct {
	Time             float64
	Metal            float64
	MaxMetal         float64
	Energy           float64
	MaxEnergy        float64
	MetalPerSecond   float64
	EnergyPerSecond  float64
	Buildpower       float64
	NumberConverters int
	Builders         int
	Buildings        int
}

// Snapshot captures the current figures
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Time:             s.Time,
		Metal:            s.Metal,
		MaxMetal:         s.MaxMetal,
		Energy:           s.Energy,
		MaxEnergy:        s.MaxEnergy,
		MetalPerSecond:   s.MetalPerSecond,
		EnergyPerSecond:  s.EnergyPerSecond,
		Buildpower:       s.TotalBuildpower(),
		NumberConverters: s.NumberConverters,
		Builders:         len(s.Builders),
		Buildings:        len(s.Buildings),
	}
}
