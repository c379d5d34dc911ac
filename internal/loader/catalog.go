package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/solver-bar/internal/models"
)

// ObjectJSON represents one catalog entry in a JSON or YAML catalog file
type ObjectJSON struct {
	Name             string  `json:"name" yaml:"name"`
	Kind             string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	MetalCost        float64 `json:"metal_cost" yaml:"metal_cost"`
	EnergyCost       float64 `json:"energy_cost" yaml:"energy_cost"`
	BuildpowerCost   float64 `json:"buildpower_cost" yaml:"buildpower_cost"`
	MetalIncome      float64 `json:"metal_income,omitempty" yaml:"metal_income,omitempty"`
	EnergyIncome     float64 `json:"energy_income,omitempty" yaml:"energy_income,omitempty"`
	BuildpowerIncome float64 `json:"buildpower_income,omitempty" yaml:"buildpower_income,omitempty"`
	Converter        bool    `json:"converter,omitempty" yaml:"converter,omitempty"`
	Builder          bool    `json:"builder,omitempty" yaml:"builder,omitempty"`
}

// CatalogFile is the top level of a catalog file
type CatalogFile struct {
	// Extend merges the file over the built-in table instead of replacing it
	Extend  bool         `json:"extend,omitempty" yaml:"extend,omitempty"`
	Objects []ObjectJSON `json:"objects" yaml:"objects"`
}

// LoadCatalog loads a catalog from a .yaml, .yml or .json file
func LoadCatalog(path string) (*models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	file, err := ParseCatalog(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return file.Catalog()
}

// ParseCatalog decodes catalog data according to its file extension
func ParseCatalog(data []byte, ext string) (*CatalogFile, error) {
	var file CatalogFile

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}

	return &file, nil
}

// Catalog converts the file into a models.Catalog
func (f *CatalogFile) Catalog() (*models.Catalog, error) {
	var profiles []models.ObjectProfile
	index := make(map[string]int)

	if f.Extend {
		for _, p := range models.DefaultProfiles() {
			index[p.Name] = len(profiles)
			profiles = append(profiles, p)
		}
	}

	for _, raw := range f.Objects {
		p, err := raw.Profile()
		if err != nil {
			return nil, err
		}
		if i, ok := index[p.Name]; ok && f.Extend {
			profiles[i] = p
			continue
		}
		index[p.Name] = len(profiles)
		profiles = append(profiles, p)
	}

	return models.NewCatalog(profiles...)
}

// Profile converts a raw entry into an ObjectProfile
func (o ObjectJSON) Profile() (models.ObjectProfile, error) {
	kind := models.ObjectKind(strings.ToLower(o.Kind))
	switch kind {
	case "":
		kind = models.Building
	case models.Building, models.Unit:
	default:
		return models.ObjectProfile{}, fmt.Errorf("object %s: unknown kind %q", o.Name, o.Kind)
	}

	return models.ObjectProfile{
		Name:             o.Name,
		Kind:             kind,
		MetalCost:        o.MetalCost,
		EnergyCost:       o.EnergyCost,
		BuildpowerCost:   o.BuildpowerCost,
		MetalIncome:      o.MetalIncome,
		EnergyIncome:     o.EnergyIncome,
		BuildpowerIncome: o.BuildpowerIncome,
		Converter:        o.Converter,
		Builder:          o.Builder,
	}, nil
}
