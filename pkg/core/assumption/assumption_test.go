package assumption

import (
	"os"
	"path/filepath"
	"testing"

	"stock_projection/pkg/core/projection"
)

func TestDefaultIsValid(t *testing.T) {
	set := Default()
	if err := set.Validate(); err != nil {
		t.Fatalf("built-in defaults must validate: %v", err)
	}
	if got := set.TotalBaseRevenue(); got != 2000 {
		t.Errorf("expected 2000 total base revenue, got %v", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	set := Default()
	data, err := set.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	decoded, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if decoded.Company != set.Company || len(decoded.Streams) != len(set.Streams) {
		t.Errorf("round trip lost data: %+v", decoded)
	}
	if decoded.Parameters.FinalMargins[projection.ScenarioBull] != 0.25 {
		t.Errorf("final margins lost in round trip: %+v", decoded.Parameters)
	}
}

func TestFromJSON_LenientInput(t *testing.T) {
	// Hand-edited scenario file with comments and unquoted keys.
	input := `{
  # single-stream sanity scenario
  company: Acme
  streams: [
    {name: Widgets, base_value: 100, growth: {bear: 0, base: 0.05, bull: 0.1}}
  ]
  parameters: {years: 2, margin: 0.2, shares_outstanding: 10, multiple: 15}
}`
	set, err := FromJSON([]byte(input))
	if err != nil {
		t.Fatalf("FromJSON failed on lenient input: %v", err)
	}
	if set.Company != "Acme" || len(set.Streams) != 1 {
		t.Errorf("unexpected set: %+v", set)
	}
	if err := set.Validate(); err != nil {
		t.Errorf("lenient set should validate: %v", err)
	}
}

func TestLoadDefaults_MissingFileFallsBack(t *testing.T) {
	set, err := LoadDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back, got error: %v", err)
	}
	if set.Company != "Company" {
		t.Errorf("expected built-in defaults, got %+v", set)
	}
}

func TestLoadDefaults_FromYAML(t *testing.T) {
	content := `company: TestCo
streams:
  - name: Cloud
    base_value: 500
    growth:
      bear: 0.02
      base: 0.08
      bull: 0.15
parameters:
  years: 3
  margin: 0.25
  final_margins:
    bear: 0.20
    base: 0.25
    bull: 0.30
  shares_outstanding: 40
  multiple: 25
`
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadDefaults(path)
	if err != nil {
		t.Fatalf("LoadDefaults failed: %v", err)
	}
	if set.Company != "TestCo" {
		t.Errorf("expected TestCo, got %s", set.Company)
	}
	if set.Streams[0].GrowthFor(projection.ScenarioBull) != 0.15 {
		t.Errorf("bull growth lost: %+v", set.Streams[0])
	}
	if set.Parameters.FinalMarginFor(projection.ScenarioBull) != 0.30 {
		t.Errorf("final margin lost: %+v", set.Parameters)
	}
}

func TestLoadDefaults_RejectsInvalidYAML(t *testing.T) {
	content := `company: BadCo
streams:
  - name: X
    base_value: -5
parameters:
  years: 3
  margin: 0.2
  shares_outstanding: 10
  multiple: 15
`
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDefaults(path); err == nil {
		t.Error("expected validation error for negative base value")
	}
}

func TestLoadFile_HJSON(t *testing.T) {
	content := `{
  company: FileCo
  streams: [{name: Core, base_value: 250, growth: {base: 0.06}}]
  parameters: {years: 4, margin: 0.18, shares_outstanding: 20, multiple: 18}
}`
	path := filepath.Join(t.TempDir(), "scenario.hjson")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if set.Company != "FileCo" || set.Parameters.Years != 4 {
		t.Errorf("unexpected set: %+v", set)
	}
}
