// Package calc provides the valuation math layered on top of the projection
// engine: per-share earnings, implied prices, and the PE sensitivity grid.
package calc

import (
	"math"

	"stock_projection/pkg/core/projection"
)

// DefaultPERatios is the sensitivity grid shown on the price table.
var DefaultPERatios = []float64{20, 40, 60, 80, 100, 120}

// EPS converts total earnings to a per-share figure.
// Earnings in $M with shares in millions yields EPS in dollars.
func EPS(earnings, shares float64) float64 {
	if shares == 0 {
		return 0
	}
	return earnings / shares
}

// ImpliedPrice applies a valuation multiple to per-share earnings.
func ImpliedPrice(eps, multiple float64) float64 {
	return eps * multiple
}

// CAGR computes the compound annual growth rate between a start and end value
// over the given number of years. Returns 0 when the inputs make the rate
// undefined.
func CAGR(start, end float64, years int) float64 {
	if years <= 0 || start <= 0 || end <= 0 {
		return 0
	}
	return math.Pow(end/start, 1/float64(years)) - 1
}

// PriceCell is one entry of the PE sensitivity grid.
type PriceCell struct {
	Scenario projection.Scenario `json:"scenario"`
	PERatio  float64             `json:"pe_ratio"`
	Price    float64             `json:"price"`
}

// PriceMatrix holds final-year implied prices across scenarios and PE ratios.
type PriceMatrix struct {
	Ratios []float64   `json:"ratios"`
	Cells  []PriceCell `json:"cells"` // row-major: ratio outer, scenario inner
}

// BuildPriceMatrix derives the PE sensitivity grid from final-year EPS.
// A nil ratio slice selects DefaultPERatios.
func BuildPriceMatrix(results map[projection.Scenario]projection.Result, ratios []float64) PriceMatrix {
	if ratios == nil {
		ratios = DefaultPERatios
	}

	matrix := PriceMatrix{Ratios: ratios}
	for _, ratio := range ratios {
		for _, s := range projection.Scenarios() {
			finalEPS := results[s].Final().EPS
			matrix.Cells = append(matrix.Cells, PriceCell{
				Scenario: s,
				PERatio:  ratio,
				Price:    ImpliedPrice(finalEPS, ratio),
			})
		}
	}
	return matrix
}

// ScenarioSummary condenses one scenario's projection to its headline numbers.
type ScenarioSummary struct {
	Scenario     projection.Scenario `json:"scenario"`
	FinalRevenue float64             `json:"final_revenue"`
	FinalEPS     float64             `json:"final_eps"`
	FinalPrice   float64             `json:"final_price"`
	RevenueCAGR  float64             `json:"revenue_cagr"`
}

// Summarize produces per-scenario headline numbers in presentation order.
func Summarize(results map[projection.Scenario]projection.Result) []ScenarioSummary {
	summaries := make([]ScenarioSummary, 0, len(projection.Scenarios()))
	for _, s := range projection.Scenarios() {
		res := results[s]
		if len(res.Rows) == 0 {
			summaries = append(summaries, ScenarioSummary{Scenario: s})
			continue
		}
		first := res.Rows[0]
		final := res.Final()
		summaries = append(summaries, ScenarioSummary{
			Scenario:     s,
			FinalRevenue: final.Revenue,
			FinalEPS:     final.EPS,
			FinalPrice:   final.ImpliedPrice,
			RevenueCAGR:  CAGR(first.Revenue, final.Revenue, final.Year),
		})
	}
	return summaries
}
