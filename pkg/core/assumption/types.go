// Package assumption implements the AssumptionSet collected by the input
// surface: company identity, revenue streams with per-scenario growth, and
// the valuation parameters handed to the projection engine.
package assumption

import (
	"encoding/json"
	"fmt"

	"stock_projection/pkg/core/projection"
	"stock_projection/pkg/core/utils"
)

// AssumptionSet holds all inputs for one projection run.
// It is constructed fresh from current input values on every request and
// carries no state across invocations.
type AssumptionSet struct {
	Company    string                     `json:"company"`
	Streams    []projection.RevenueStream `json:"streams"`
	Parameters projection.Parameters      `json:"parameters"`
}

// Validate runs the engine's input checks via a throwaway projection.
func (as *AssumptionSet) Validate() error {
	_, err := projection.Project(as.Streams, as.Parameters)
	return err
}

// TotalBaseRevenue sums the year-0 revenue across all streams.
func (as *AssumptionSet) TotalBaseRevenue() float64 {
	total := 0.0
	for _, s := range as.Streams {
		total += s.BaseValue
	}
	return total
}

// ToJSON serializes the assumption set for the frontend.
func (as *AssumptionSet) ToJSON() ([]byte, error) {
	return json.Marshal(as)
}

// FromJSON decodes an assumption set, tolerating hand-edited files
// (comments, unquoted keys, trailing commas).
func FromJSON(data []byte) (*AssumptionSet, error) {
	var as AssumptionSet
	if err := utils.SmartParse(string(data), &as); err != nil {
		return nil, fmt.Errorf("failed to parse assumption set: %w", err)
	}
	return &as, nil
}

// Default returns the assumption set the UI starts from: two product streams
// at 1000 $M each, a five-year horizon, and margins ramping per scenario.
func Default() *AssumptionSet {
	return &AssumptionSet{
		Company: "Company",
		Streams: []projection.RevenueStream{
			{
				Name:      "Product A",
				BaseValue: 1000,
				Growth: map[projection.Scenario]float64{
					projection.ScenarioBear: 0.05,
					projection.ScenarioBase: 0.10,
					projection.ScenarioBull: 0.20,
				},
			},
			{
				Name:      "Product B",
				BaseValue: 1000,
				Growth: map[projection.Scenario]float64{
					projection.ScenarioBear: 0.05,
					projection.ScenarioBase: 0.10,
					projection.ScenarioBull: 0.20,
				},
			},
		},
		Parameters: projection.Parameters{
			Years:  5,
			Margin: 0.20,
			FinalMargins: map[projection.Scenario]float64{
				projection.ScenarioBear: 0.15,
				projection.ScenarioBase: 0.20,
				projection.ScenarioBull: 0.25,
			},
			SharesOutstanding: 100, // millions
			Multiple:          20,
		},
	}
}
