package chart

import (
	"math"
	"testing"

	"stock_projection/pkg/core/projection"
)

func results(t *testing.T) map[projection.Scenario]projection.Result {
	t.Helper()
	streams := []projection.RevenueStream{
		{Name: "Product A", BaseValue: 100, Growth: map[projection.Scenario]float64{
			projection.ScenarioBear: 0.0,
			projection.ScenarioBase: 0.05,
			projection.ScenarioBull: 0.10,
		}},
	}
	params := projection.Parameters{Years: 2, Margin: 0.2, SharesOutstanding: 10, Multiple: 15}
	res, err := projection.Project(streams, params)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	return res
}

func TestBuildSeries(t *testing.T) {
	series := BuildSeries(results(t), MetricRevenue, 2026)

	if len(series) != 3 {
		t.Fatalf("expected one series per scenario, got %d", len(series))
	}
	// Presentation order and fixed colors.
	if series[0].Scenario != projection.ScenarioBear || series[0].Color != "#d62728" {
		t.Errorf("bear series wrong: %+v", series[0])
	}
	if series[1].Scenario != projection.ScenarioBase || series[1].Color != "#1f77b4" {
		t.Errorf("base series wrong: %+v", series[1])
	}

	base := series[1]
	if len(base.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(base.Points))
	}
	if base.Points[0].Year != 2026 || base.Points[2].Year != 2028 {
		t.Errorf("calendar axis wrong: %+v", base.Points)
	}
	if math.Abs(base.Points[2].Value-110.25) > 1e-9 {
		t.Errorf("base final revenue: got %v, exp 110.25", base.Points[2].Value)
	}
}

func TestBuildAll(t *testing.T) {
	all := BuildAll(results(t), 2026)
	if len(all) != 4 {
		t.Fatalf("expected 4 metrics, got %d", len(all))
	}

	price := all[MetricPrice]
	if price[1].Title != "Implied Price Projections" {
		t.Errorf("unexpected title: %s", price[1].Title)
	}
	if math.Abs(price[1].Points[2].Value-33.075) > 1e-9 {
		t.Errorf("base final price: got %v, exp 33.075", price[1].Points[2].Value)
	}

	eps := all[MetricEPS]
	if math.Abs(eps[2].Points[2].Value-2.42) > 1e-9 {
		t.Errorf("bull final EPS: got %v, exp 2.42", eps[2].Points[2].Value)
	}
}
