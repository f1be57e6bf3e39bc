package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scenario file: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
name: demo
regions:
  - label: load
    duration: 40ms
    repeat: 2
    log: true
    children:
      - label: parse
        duration: 10ms
      - label: index
        duration: 5ms
`)

	scenario, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if scenario.Name != "demo" {
		t.Errorf("Expected name 'demo', got %q", scenario.Name)
	}
	if len(scenario.Regions) != 1 {
		t.Fatalf("Expected 1 top-level region, got %d", len(scenario.Regions))
	}

	load := scenario.Regions[0]
	if load.Label != "load" || load.Repeat != 2 || !load.Log {
		t.Errorf("Unexpected top-level region: %+v", load)
	}
	if d, err := load.ParseDuration(); err != nil || d != 40*time.Millisecond {
		t.Errorf("Expected 40ms duration, got %v (err %v)", d, err)
	}
	if len(load.Children) != 2 {
		t.Errorf("Expected 2 children, got %d", len(load.Children))
	}
}

func TestLoadScenarioAppliesDefaults(t *testing.T) {
	path := writeScenario(t, `
regions:
  - label: work
    duration: 1ms
    children:
      - label: sub
        duration: 1ms
`)

	scenario, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if scenario.Regions[0].Repeat != 1 {
		t.Errorf("Expected default repeat of 1, got %d", scenario.Regions[0].Repeat)
	}
	if scenario.Regions[0].Children[0].Repeat != 1 {
		t.Errorf("Expected default repeat of 1 on child, got %d", scenario.Regions[0].Children[0].Repeat)
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadScenarioSchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing regions", "name: x\n"},
		{"empty regions", "regions: []\n"},
		{"missing label", "regions:\n  - duration: 1ms\n"},
		{"missing duration", "regions:\n  - label: a\n"},
		{"unknown key", "regions:\n  - label: a\n    duration: 1ms\n    bogus: true\n"},
		{"repeat below one", "regions:\n  - label: a\n    duration: 1ms\n    repeat: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Errorf("Expected a validation error for %s", tt.name)
			}
		})
	}
}

func TestLoadScenarioBadDuration(t *testing.T) {
	path := writeScenario(t, `
regions:
  - label: work
    duration: fast
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected an error for an unparseable duration")
	}
	if !strings.Contains(err.Error(), "invalid duration for region 'work'") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadScenarioDuplicateSiblings(t *testing.T) {
	path := writeScenario(t, `
regions:
  - label: work
    duration: 1ms
  - label: work
    duration: 2ms
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected an error for duplicate sibling labels")
	}
	if !strings.Contains(err.Error(), "duplicate sibling region label 'work'") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadScenarioSharedLabelAcrossLevelsAllowed(t *testing.T) {
	// The same label at different levels is a resumed region, not an error.
	path := writeScenario(t, `
regions:
  - label: work
    duration: 1ms
    children:
      - label: work
        duration: 1ms
`)

	if _, err := Load(path); err != nil {
		t.Errorf("Expected shared label across levels to be allowed, got %v", err)
	}
}
