package projection

import "math"

// Project computes the year-by-year projection table for every scenario.
//
// For each scenario, each stream's revenue compounds from its base value at
// that scenario's growth rate; totals are summed across streams, earnings are
// total revenue times the effective margin for the year, and the implied share
// price is earnings times the valuation multiple divided by shares.
//
// Year 0 is the given base values, undiscounted and identical across
// scenarios. The result always covers years 0..N inclusive.
//
// Project is a pure function: identical inputs yield identical results and
// nothing is carried between calls.
func Project(streams []RevenueStream, params Parameters) (map[Scenario]Result, error) {
	if err := validate(streams, params); err != nil {
		return nil, err
	}

	results := make(map[Scenario]Result, len(Scenarios()))
	for _, scenario := range Scenarios() {
		results[scenario] = projectScenario(streams, params, scenario)
	}
	return results, nil
}

func projectScenario(streams []RevenueStream, params Parameters, scenario Scenario) Result {
	margins := marginPathFor(params, scenario)

	rows := make([]Row, 0, params.Years+1)
	for year := 0; year <= params.Years; year++ {
		totalRev := 0.0
		for _, stream := range streams {
			g := stream.GrowthFor(scenario)
			totalRev += stream.BaseValue * math.Pow(1+g, float64(year))
		}

		earnings := totalRev * margins.At(year, params.Years)
		eps := earnings / params.SharesOutstanding

		rows = append(rows, Row{
			Year:         year,
			Revenue:      totalRev,
			Earnings:     earnings,
			EPS:          eps,
			ImpliedPrice: eps * params.Multiple,
		})
	}

	return Result{Scenario: scenario, Rows: rows}
}

func validate(streams []RevenueStream, params Parameters) error {
	if len(streams) == 0 {
		return ErrEmptyInput
	}
	if params.Years < 1 {
		return invalidf("years", "must be >= 1, got %d", params.Years)
	}
	if params.SharesOutstanding <= 0 {
		return invalidf("shares_outstanding", "must be > 0, got %v", params.SharesOutstanding)
	}
	if params.Margin < 0 || params.Margin > 1 {
		return invalidf("margin", "must be within [0,1], got %v", params.Margin)
	}
	for s, m := range params.FinalMargins {
		if !s.Valid() {
			return invalidf("final_margins", "unknown scenario %q", s)
		}
		if m < 0 || m > 1 {
			return invalidf("final_margins", "%s must be within [0,1], got %v", s, m)
		}
	}
	if params.Multiple < 0 {
		return invalidf("multiple", "must be >= 0, got %v", params.Multiple)
	}

	seen := make(map[string]bool, len(streams))
	for _, stream := range streams {
		if stream.Name == "" {
			return invalidf("streams", "stream name cannot be empty")
		}
		if seen[stream.Name] {
			return invalidf("streams", "duplicate stream name %q", stream.Name)
		}
		seen[stream.Name] = true

		if stream.BaseValue < 0 {
			return invalidf("streams", "%s: base value must be >= 0, got %v", stream.Name, stream.BaseValue)
		}
		for s := range stream.Growth {
			if !s.Valid() {
				return invalidf("streams", "%s: unknown scenario %q", stream.Name, s)
			}
		}
	}
	return nil
}
