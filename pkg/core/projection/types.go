// Package projection implements the multi-scenario revenue projection engine.
// Core Philosophy: "Pure Function, No Hidden State"
// - Every call recomputes the full table from the inputs it was given
// - The HTTP layer may re-invoke it on every input change; no locking needed
package projection

// Scenario selects an optimism level for the growth assumptions.
type Scenario string

const (
	ScenarioBear Scenario = "bear"
	ScenarioBase Scenario = "base"
	ScenarioBull Scenario = "bull"
)

// Scenarios returns all scenarios in presentation order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioBear, ScenarioBase, ScenarioBull}
}

// Valid reports whether s is one of the three known scenarios.
func (s Scenario) Valid() bool {
	switch s {
	case ScenarioBear, ScenarioBase, ScenarioBull:
		return true
	}
	return false
}

// RevenueStream is one independently-growing source of revenue.
// BaseValue is the year-0 revenue (in $M by convention of the input surface).
// Growth holds the annual growth rate per scenario as a fraction; rates may be
// negative.
type RevenueStream struct {
	Name      string               `json:"name"`
	BaseValue float64              `json:"base_value"`
	Growth    map[Scenario]float64 `json:"growth"`
}

// GrowthFor returns the stream's growth rate for a scenario, defaulting to 0
// when the scenario has no explicit rate.
func (rs RevenueStream) GrowthFor(s Scenario) float64 {
	if rs.Growth == nil {
		return 0
	}
	return rs.Growth[s]
}

// Parameters holds the valuation inputs shared by all scenarios.
//
// Margin is the current (year-0) operating margin as a fraction of revenue.
// FinalMargins optionally sets a per-scenario target margin for the last
// projected year; the effective margin is then interpolated linearly from
// Margin to the target. When FinalMargins is empty the margin is constant.
//
// SharesOutstanding is expressed in millions so that EPS comes out in dollars
// when revenue is entered in $M.
type Parameters struct {
	Years             int                  `json:"years"`
	Margin            float64              `json:"margin"`
	FinalMargins      map[Scenario]float64 `json:"final_margins,omitempty"`
	SharesOutstanding float64              `json:"shares_outstanding"`
	Multiple          float64              `json:"multiple"`
}

// FinalMarginFor returns the scenario's target margin for the last projected
// year, falling back to the flat current margin.
func (p Parameters) FinalMarginFor(s Scenario) float64 {
	if p.FinalMargins == nil {
		return p.Margin
	}
	if m, ok := p.FinalMargins[s]; ok {
		return m
	}
	return p.Margin
}

// Row is one projected year. Derived, immutable once computed.
type Row struct {
	Year         int     `json:"year"` // 0 = base year
	Revenue      float64 `json:"revenue"`
	Earnings     float64 `json:"earnings"`
	EPS          float64 `json:"eps"`
	ImpliedPrice float64 `json:"implied_price"`
}

// Result is the ordered projection table for one scenario, years 0..N.
type Result struct {
	Scenario Scenario `json:"scenario"`
	Rows     []Row    `json:"rows"`
}

// Final returns the last projected row.
func (r Result) Final() Row {
	if len(r.Rows) == 0 {
		return Row{}
	}
	return r.Rows[len(r.Rows)-1]
}
