package report

import (
	"strings"
	"testing"

	"stock_projection/pkg/core/assumption"
	"stock_projection/pkg/core/calc"
	"stock_projection/pkg/core/projection"
)

func buildFixtures(t *testing.T) (*assumption.AssumptionSet, map[projection.Scenario]projection.Result, calc.PriceMatrix) {
	t.Helper()
	set := assumption.Default()
	set.Company = "Acme"
	results, err := projection.Project(set.Streams, set.Parameters)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	return set, results, calc.BuildPriceMatrix(results, nil)
}

func TestBuildMarkdown_Sections(t *testing.T) {
	set, results, matrix := buildFixtures(t)
	doc := BuildMarkdown(set, results, matrix)

	for _, want := range []string{
		"# Acme Stock Projection Analysis",
		"## Input Parameters",
		"### Revenue Streams",
		"### Growth Assumptions",
		"### Margin Assumptions",
		"## Financial Projections",
		"### Bear Case",
		"### Base Case",
		"### Bull Case",
		"## Projected Growth",
		"| Final-Year Revenue YoY (%) |",
		"## Projected Stock Prices",
		"| Product A | 1,000.00 |",
		"Report generated on",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// One final-year projection row per scenario table.
	if got := strings.Count(doc, "\n| 5 | "); got != 3 {
		t.Errorf("expected 3 final-year rows, got %d", got)
	}
}

func TestRenderHTML(t *testing.T) {
	set, results, matrix := buildFixtures(t)
	html, err := RenderHTML(BuildMarkdown(set, results, matrix))
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Acme Stock Projection Analysis") {
		t.Error("expected rendered title heading")
	}
	// GFM extension must turn the pipe tables into real tables.
	if !strings.Contains(html, "<table>") {
		t.Error("expected rendered tables")
	}
}

func TestMoneyFormatting(t *testing.T) {
	cases := map[float64]string{
		0:           "0.00",
		1000:        "1,000.00",
		1234567.891: "1,234,567.89",
		-1234.5:     "-1,234.50",
		999.999:     "1,000.00",
	}
	for in, want := range cases {
		if got := money(in); got != want {
			t.Errorf("money(%v): got %q, want %q", in, got, want)
		}
	}
}
