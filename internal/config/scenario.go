// Package config loads and validates scenario files for the mprof CLI. A
// scenario describes a nested synthetic workload that is replayed through
// the profiler.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario is the top-level scenario file structure.
type Scenario struct {
	Name    string   `yaml:"name"`
	Regions []Region `yaml:"regions"`
}

// Region describes one profiled region: how long to spend in it, how many
// times to enter it, and which regions run nested inside it.
type Region struct {
	Label    string   `yaml:"label"`
	Duration string   `yaml:"duration"`
	Repeat   int      `yaml:"repeat"`
	Log      bool     `yaml:"log"`
	Children []Region `yaml:"children,omitempty"`
}

// ParseDuration returns the region's duration. Validation guarantees it
// parses for loaded scenarios.
func (r Region) ParseDuration() (time.Duration, error) {
	return time.ParseDuration(r.Duration)
}

// Load reads, parses, and validates a scenario file.
func Load(path string) (*Scenario, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("scenario file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading scenario file: %w", err)
	}

	// Structural validation against the schema before decoding into typed
	// structs, so unknown keys and shape errors are reported with schema
	// messages rather than as silently dropped fields.
	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("error parsing scenario file: %w", err)
	}

	ApplyDefaults(&scenario)

	if err := Validate(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// ApplyDefaults fills in defaults for optional fields.
func ApplyDefaults(scenario *Scenario) {
	applyRegionDefaults(scenario.Regions)
}

func applyRegionDefaults(regions []Region) {
	for i := range regions {
		if regions[i].Repeat < 1 {
			regions[i].Repeat = 1
		}
		applyRegionDefaults(regions[i].Children)
	}
}

// Validate checks the semantic rules the schema cannot express: durations
// must parse and sibling labels must be distinct.
func Validate(scenario *Scenario) error {
	if len(scenario.Regions) == 0 {
		return fmt.Errorf("scenario must define at least one region")
	}
	return validateRegions(scenario.Regions)
}

func validateRegions(regions []Region) error {
	seen := make(map[string]bool, len(regions))
	for _, r := range regions {
		if r.Label == "" {
			return fmt.Errorf("region label cannot be empty")
		}
		if seen[r.Label] {
			return fmt.Errorf("duplicate sibling region label '%s'", r.Label)
		}
		seen[r.Label] = true

		if _, err := r.ParseDuration(); err != nil {
			return fmt.Errorf("invalid duration for region '%s': %w", r.Label, err)
		}
		if r.Repeat < 1 {
			return fmt.Errorf("repeat for region '%s' must be at least 1", r.Label)
		}

		if err := validateRegions(r.Children); err != nil {
			return err
		}
	}
	return nil
}
