package models

import (
	"errors"
	"fmt"
	"sort"
)

// ObjectKind separates static buildings from units
type ObjectKind string

const (
	Building ObjectKind = "building"
	Unit     ObjectKind = "unit"
)

// ObjectProfile is the economic profile of one buildable object
type ObjectProfile struct {
	Name           string
	Kind           ObjectKind
	MetalCost      float64
	EnergyCost     float64
	BuildpowerCost float64

	// Steady-state rate deltas applied when construction completes
	MetalIncome      float64
	EnergyIncome     float64
	BuildpowerIncome float64 // Non-zero only for producer units

	Converter bool // Trades surplus energy for metal
	Builder   bool // Counted in the builder list even without buildpower income
}

// IsBuilder reports whether a completed object joins the builder list
func (p *ObjectProfile) IsBuilder() bool {
	if p.Builder {
		return true
	}
	return p.Kind == Unit && p.BuildpowerIncome > 0
}

// Catalog is an immutable lookup of object profiles keyed by name
type Catalog struct {
	profiles map[string]ObjectProfile
	names    []string
}

var (
	ErrEmptyName     = errors.New("object name is empty")
	ErrDuplicateName = errors.New("duplicate object name")
	ErrNegativeCost  = errors.New("negative cost")
)

// NewCatalog builds a catalog, rejecting duplicate names and negative costs
func NewCatalog(profiles ...ObjectProfile) (*Catalog, error) {
	c := &Catalog{
		profiles: make(map[string]ObjectProfile, len(profiles)),
		names:    make([]string, 0, len(profiles)),
	}

	for _, p := range profiles {
		if p.Name == "" {
			return nil, ErrEmptyName
		}
		if _, ok := c.profiles[p.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
		}
		if p.MetalCost < 0 || p.EnergyCost < 0 || p.BuildpowerCost < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeCost, p.Name)
		}
		if p.Kind == "" {
			p.Kind = Building
		}
		c.profiles[p.Name] = p
		c.names = append(c.names, p.Name)
	}

	sort.Strings(c.names)
	return c, nil
}

// Get returns a copy of the profile for name
func (c *Catalog) Get(name string) (*ObjectProfile, bool) {
	p, ok := c.profiles[name]
	if !ok {
		return nil, false
	}
	return &p, true
}

// Has returns true if name is in the catalog
func (c *Catalog) Has(name string) bool {
	_, ok := c.profiles[name]
	return ok
}

// Names returns all object names in sorted order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of profiles
func (c *Catalog) Len() int {
	return len(c.names)
}

// Each iterates over profiles in name order
func (c *Catalog) Each(fn func(ObjectProfile)) {
	for _, name := range c.names {
		fn(c.profiles[name])
	}
}

// CheapestBuilder returns the builder unit with the lowest metal cost.
// Zero-cost builders (the starting producer) are skipped.
func (c *Catalog) CheapestBuilder() (string, bool) {
	best := ""
	bestCost := 0.0
	for _, name := range c.names {
		p := c.profiles[name]
		if !p.IsBuilder() || p.MetalCost <= 0 {
			continue
		}
		if best == "" || p.MetalCost < bestCost {
			best = name
			bestCost = p.MetalCost
		}
	}
	return best, best != ""
}
