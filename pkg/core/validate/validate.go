// Package validate provides reusable growth-check utilities.
// These functions can be called from tests, API handlers, or report code
// to verify projection tables and derive year-over-year figures.
package validate

import (
	"fmt"
	"math"

	"stock_projection/pkg/core/projection"
)

// YoYResult holds the result of a year-over-year calculation.
type YoYResult struct {
	Year      int     `json:"year"`
	PriorYear int     `json:"prior_year"`
	Current   float64 `json:"current"`
	Prior     float64 `json:"prior"`
	ChangeAbs float64 `json:"change_abs"`
	ChangePct float64 `json:"change_pct"`
	Label     string  `json:"label"` // e.g. "Revenue", "Earnings"
}

// CalculateYoY returns the percentage change (current - prior) / prior * 100.
func CalculateYoY(current, prior float64) float64 {
	if prior == 0 {
		if current == 0 {
			return 0
		}
		return math.Inf(1) // growth from zero
	}
	return (current - prior) / prior * 100
}

// RevenueYoY derives year-over-year revenue changes from a projection table,
// one entry per projected year (year 1 onward).
func RevenueYoY(res projection.Result) []YoYResult {
	series := make([]YoYResult, 0, len(res.Rows))
	for i := 1; i < len(res.Rows); i++ {
		cur, prev := res.Rows[i], res.Rows[i-1]
		series = append(series, YoYResult{
			Year:      cur.Year,
			PriorYear: prev.Year,
			Current:   cur.Revenue,
			Prior:     prev.Revenue,
			ChangeAbs: cur.Revenue - prev.Revenue,
			ChangePct: CalculateYoY(cur.Revenue, prev.Revenue),
			Label:     "Revenue",
		})
	}
	return series
}

// CheckRowContinuity verifies that a projection table covers years 0..N with
// no gaps. Returns a descriptive error on the first violation.
func CheckRowContinuity(res projection.Result) error {
	for i, row := range res.Rows {
		if row.Year != i {
			return fmt.Errorf("%s: row %d carries year %d, expected %d", res.Scenario, i, row.Year, i)
		}
	}
	return nil
}

// CheckMonotonicRevenue verifies non-decreasing revenue, which must hold for
// any scenario whose growth rates are all non-negative.
func CheckMonotonicRevenue(res projection.Result) error {
	for i := 1; i < len(res.Rows); i++ {
		if res.Rows[i].Revenue < res.Rows[i-1].Revenue {
			return fmt.Errorf("%s: revenue fell from %v to %v at year %d",
				res.Scenario, res.Rows[i-1].Revenue, res.Rows[i].Revenue, res.Rows[i].Year)
		}
	}
	return nil
}
