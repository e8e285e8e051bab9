package calc

import (
	"math"
	"testing"

	"stock_projection/pkg/core/projection"
)

func approx(t *testing.T, got, exp float64, label string) {
	t.Helper()
	if math.Abs(got-exp) > 1e-9 {
		t.Errorf("%s: got %v, exp %v", label, got, exp)
	}
}

func sampleResults(t *testing.T) map[projection.Scenario]projection.Result {
	t.Helper()
	streams := []projection.RevenueStream{
		{Name: "Product A", BaseValue: 100, Growth: map[projection.Scenario]float64{
			projection.ScenarioBear: 0.0,
			projection.ScenarioBase: 0.05,
			projection.ScenarioBull: 0.10,
		}},
	}
	params := projection.Parameters{Years: 2, Margin: 0.2, SharesOutstanding: 10, Multiple: 15}
	results, err := projection.Project(streams, params)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	return results
}

func TestEPSAndImpliedPrice(t *testing.T) {
	approx(t, EPS(22.05, 10), 2.205, "EPS")
	approx(t, ImpliedPrice(2.205, 15), 33.075, "implied price")
	approx(t, EPS(100, 0), 0, "EPS with zero shares")
}

func TestCAGR(t *testing.T) {
	approx(t, CAGR(100, 110.25, 2), 0.05, "5% over two years")
	approx(t, CAGR(100, 100, 5), 0, "flat")
	approx(t, CAGR(0, 100, 5), 0, "undefined start")
	approx(t, CAGR(100, 200, 0), 0, "zero years")
}

func TestBuildPriceMatrix(t *testing.T) {
	results := sampleResults(t)
	matrix := BuildPriceMatrix(results, nil)

	if len(matrix.Ratios) != len(DefaultPERatios) {
		t.Fatalf("expected default ratios, got %v", matrix.Ratios)
	}
	if len(matrix.Cells) != len(DefaultPERatios)*3 {
		t.Fatalf("expected %d cells, got %d", len(DefaultPERatios)*3, len(matrix.Cells))
	}

	// Base-case final EPS is 2.205; at PE 20 the price is 44.10.
	for _, cell := range matrix.Cells {
		if cell.Scenario == projection.ScenarioBase && cell.PERatio == 20 {
			approx(t, cell.Price, 44.1, "base price at PE 20")
			return
		}
	}
	t.Fatal("base/PE-20 cell not found")
}

func TestSummarize(t *testing.T) {
	summaries := Summarize(sampleResults(t))
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}

	// Presentation order: bear, base, bull.
	if summaries[0].Scenario != projection.ScenarioBear || summaries[2].Scenario != projection.ScenarioBull {
		t.Errorf("unexpected scenario order: %v", summaries)
	}

	base := summaries[1]
	approx(t, base.FinalRevenue, 110.25, "base final revenue")
	approx(t, base.RevenueCAGR, 0.05, "base revenue CAGR")
	approx(t, base.FinalPrice, 33.075, "base final price")
}
