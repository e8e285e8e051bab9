// Package chart shapes projection results into the line-series form the
// rendering surface plots. It owns no drawing: only the data contract.
package chart

import (
	"time"

	"stock_projection/pkg/core/projection"
)

// Metric names one plottable column of the projection table.
type Metric string

const (
	MetricRevenue  Metric = "revenue"
	MetricEarnings Metric = "earnings"
	MetricEPS      Metric = "eps"
	MetricPrice    Metric = "implied_price"
)

// Titles for each metric, as shown on the chart headers.
var metricTitles = map[Metric]string{
	MetricRevenue:  "Revenue Projections",
	MetricEarnings: "Net Income Projections",
	MetricEPS:      "EPS Projections",
	MetricPrice:    "Implied Price Projections",
}

// ScenarioColors are fixed so every chart renders scenarios consistently.
var ScenarioColors = map[projection.Scenario]string{
	projection.ScenarioBear: "#d62728", // red
	projection.ScenarioBase: "#1f77b4", // blue
	projection.ScenarioBull: "#2ca02c", // green
}

// Point is one plotted value on a calendar-year axis.
type Point struct {
	Year  int     `json:"year"` // calendar year
	Value float64 `json:"value"`
}

// Series is one scenario's line for one metric.
type Series struct {
	Scenario projection.Scenario `json:"scenario"`
	Metric   Metric              `json:"metric"`
	Title    string              `json:"title"`
	Color    string              `json:"color"`
	Points   []Point             `json:"points"`
}

// BuildSeries extracts one metric across all scenarios, in presentation
// order. The year axis starts at startYear (year 0 of the projection).
func BuildSeries(results map[projection.Scenario]projection.Result, metric Metric, startYear int) []Series {
	series := make([]Series, 0, len(projection.Scenarios()))
	for _, s := range projection.Scenarios() {
		res := results[s]
		points := make([]Point, 0, len(res.Rows))
		for _, row := range res.Rows {
			points = append(points, Point{Year: startYear + row.Year, Value: metricValue(row, metric)})
		}
		series = append(series, Series{
			Scenario: s,
			Metric:   metric,
			Title:    metricTitles[metric],
			Color:    ScenarioColors[s],
			Points:   points,
		})
	}
	return series
}

// BuildAll returns the standard chart set: revenue, earnings, EPS and implied
// price, keyed by metric.
func BuildAll(results map[projection.Scenario]projection.Result, startYear int) map[Metric][]Series {
	out := make(map[Metric][]Series, 4)
	for _, m := range []Metric{MetricRevenue, MetricEarnings, MetricEPS, MetricPrice} {
		out[m] = BuildSeries(results, m, startYear)
	}
	return out
}

// CurrentStartYear anchors the projection's year 0 to the present calendar
// year.
func CurrentStartYear() int {
	return time.Now().Year()
}

func metricValue(row projection.Row, metric Metric) float64 {
	switch metric {
	case MetricEarnings:
		return row.Earnings
	case MetricEPS:
		return row.EPS
	case MetricPrice:
		return row.ImpliedPrice
	default:
		return row.Revenue
	}
}
