package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const nestedScenario = `
name: integration
regions:
  - label: load
    duration: 20ms
    repeat: 2
    children:
      - label: parse
        duration: 5ms
`

func TestRunScenarioPrintsSummary(t *testing.T) {
	path := writeScenario(t, nestedScenario)

	var out bytes.Buffer
	err := runScenario(path, runOptions{NoColor: true}, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Profile summary: integration")
	assert.Contains(t, got, "% Time")
	assert.Contains(t, got, "Total Time (ms)")
	assert.Contains(t, got, "load")
	assert.Contains(t, got, "parse")

	// load ran twice, parse ran twice (once per load iteration).
	lines := strings.Split(got, "\n")
	var loadLine string
	for _, line := range lines {
		if strings.HasSuffix(line, "load") {
			loadLine = line
		}
	}
	require.NotEmpty(t, loadLine, "summary must contain a row for 'load'")
	assert.Contains(t, loadLine, "2", "load row must show 2 calls")
}

func TestRunScenarioDump(t *testing.T) {
	path := writeScenario(t, nestedScenario)

	var out bytes.Buffer
	err := runScenario(path, runOptions{NoColor: true, Dump: true}, &out)
	require.NoError(t, err)

	// The dump is the JSON array after the blank separator line.
	idx := strings.Index(out.String(), "[")
	require.Greater(t, idx, 0, "expected a JSON dump after the summary")
	dump := out.String()[idx:]

	require.True(t, gjson.Valid(dump), "dump must be valid JSON: %q", dump)
	assert.Equal(t, int64(2), gjson.Get(dump, "#").Int())
	assert.Equal(t, "load", gjson.Get(dump, "0.label").String())
	assert.False(t, gjson.Get(dump, "0.isChild").Bool())
	assert.True(t, gjson.Get(dump, "1.isChild").Bool())
	assert.Equal(t, int64(2), gjson.Get(dump, "0.count").Int())
	assert.False(t, gjson.Get(dump, "0.running").Bool())
}

func TestRunScenarioIntervalStats(t *testing.T) {
	path := writeScenario(t, nestedScenario)

	var out bytes.Buffer
	err := runScenario(path, runOptions{NoColor: true, Stats: true}, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Interval percentiles")
	assert.Contains(t, got, "Intervals")

	// Both labels appear in the stats table after the summary.
	statsSection := got[strings.Index(got, "Interval percentiles"):]
	assert.Contains(t, statsSection, "load")
	assert.Contains(t, statsSection, "parse")
}

func TestRunScenarioMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runScenario(filepath.Join(t.TempDir(), "nope.yaml"), runOptions{NoColor: true}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, out.String())
}

func TestRunScenarioInvalidScenario(t *testing.T) {
	path := writeScenario(t, "regions: []\n")

	var out bytes.Buffer
	err := runScenario(path, runOptions{NoColor: true}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")
}
