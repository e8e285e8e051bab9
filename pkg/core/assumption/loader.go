package assumption

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"stock_projection/pkg/core/projection"
)

// yamlSet mirrors AssumptionSet with yaml tags for the defaults file.
type yamlSet struct {
	Company string `yaml:"company"`
	Streams []struct {
		Name      string             `yaml:"name"`
		BaseValue float64            `yaml:"base_value"`
		Growth    map[string]float64 `yaml:"growth"`
	} `yaml:"streams"`
	Parameters struct {
		Years             int                `yaml:"years"`
		Margin            float64            `yaml:"margin"`
		FinalMargins      map[string]float64 `yaml:"final_margins"`
		SharesOutstanding float64            `yaml:"shares_outstanding"`
		Multiple          float64            `yaml:"multiple"`
	} `yaml:"parameters"`
}

// LoadDefaults reads the default assumption set from a YAML file.
// A missing path (or empty filename) falls back to the built-in defaults so
// the server starts without any configuration on disk.
func LoadDefaults(path string) (*AssumptionSet, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read defaults file: %w", err)
	}

	var raw yamlSet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse defaults file %s: %w", path, err)
	}

	set := raw.toSet()
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("defaults file %s: %w", path, err)
	}
	return set, nil
}

// LoadFile reads a scenario file in JSON or HJSON form and validates it.
func LoadFile(path string) (*AssumptionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	set, err := FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return set, nil
}

func streamFromYAML(name string, base float64, growth map[string]float64) projection.RevenueStream {
	return projection.RevenueStream{
		Name:      name,
		BaseValue: base,
		Growth:    scenarioMap(growth),
	}
}

func scenarioMap(in map[string]float64) map[projection.Scenario]float64 {
	if in == nil {
		return nil
	}
	out := make(map[projection.Scenario]float64, len(in))
	for k, v := range in {
		out[projection.Scenario(k)] = v
	}
	return out
}

func (y yamlSet) toSet() *AssumptionSet {
	set := &AssumptionSet{Company: y.Company}
	for _, s := range y.Streams {
		set.Streams = append(set.Streams, streamFromYAML(s.Name, s.BaseValue, s.Growth))
	}
	set.Parameters.Years = y.Parameters.Years
	set.Parameters.Margin = y.Parameters.Margin
	set.Parameters.SharesOutstanding = y.Parameters.SharesOutstanding
	set.Parameters.Multiple = y.Parameters.Multiple
	if len(y.Parameters.FinalMargins) > 0 {
		set.Parameters.FinalMargins = scenarioMap(y.Parameters.FinalMargins)
	}
	return set
}
