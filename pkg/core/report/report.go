// Package report builds the exportable projection report: a markdown
// document assembled from the assumption set and the computed tables, plus an
// HTML rendering of it.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"stock_projection/pkg/core/assumption"
	"stock_projection/pkg/core/calc"
	"stock_projection/pkg/core/projection"
	"stock_projection/pkg/core/validate"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// BuildMarkdown assembles the full report document.
func BuildMarkdown(set *assumption.AssumptionSet, results map[projection.Scenario]projection.Result, matrix calc.PriceMatrix) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Stock Projection Analysis\n\n", set.Company)

	writeInputSection(&b, set)
	writeGrowthSection(&b, set)
	writeMarginSection(&b, set)
	writeProjectionTables(&b, results)
	writeSummarySection(&b, results)
	writePriceMatrix(&b, matrix)

	fmt.Fprintf(&b, "\n*Report generated on %s*\n", time.Now().Format("January 2, 2006 at 3:04 PM"))
	return b.String()
}

// RenderHTML converts a markdown report to HTML (GFM tables enabled).
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

func writeInputSection(b *strings.Builder, set *assumption.AssumptionSet) {
	p := set.Parameters
	fmt.Fprintf(b, "## Input Parameters\n\n")
	fmt.Fprintf(b, "| Parameter | Value |\n|---|---|\n")
	fmt.Fprintf(b, "| Company Name | %s |\n", set.Company)
	fmt.Fprintf(b, "| Outstanding Shares (M) | %s |\n", money(p.SharesOutstanding))
	fmt.Fprintf(b, "| Projection Period (Years) | %d |\n", p.Years)
	fmt.Fprintf(b, "| Current Total Revenue ($M) | %s |\n", money(set.TotalBaseRevenue()))
	fmt.Fprintf(b, "| Current Operating Margin | %.1f%% |\n", p.Margin*100)
	fmt.Fprintf(b, "| Current Operating Income ($M) | %s |\n", money(set.TotalBaseRevenue()*p.Margin))
	fmt.Fprintf(b, "| Valuation Multiple | %.1fx |\n\n", p.Multiple)

	fmt.Fprintf(b, "### Revenue Streams\n\n")
	fmt.Fprintf(b, "| Revenue Stream | Current Revenue ($M) |\n|---|---|\n")
	fmt.Fprintf(b, "| Total | %s |\n", money(set.TotalBaseRevenue()))
	for _, s := range set.Streams {
		fmt.Fprintf(b, "| %s | %s |\n", s.Name, money(s.BaseValue))
	}
	b.WriteString("\n")
}

func writeGrowthSection(b *strings.Builder, set *assumption.AssumptionSet) {
	fmt.Fprintf(b, "### Growth Assumptions\n\n")
	fmt.Fprintf(b, "| Revenue Stream | Bear (%%) | Base (%%) | Bull (%%) |\n|---|---|---|---|\n")
	for _, s := range set.Streams {
		fmt.Fprintf(b, "| %s | %.1f | %.1f | %.1f |\n",
			s.Name,
			s.GrowthFor(projection.ScenarioBear)*100,
			s.GrowthFor(projection.ScenarioBase)*100,
			s.GrowthFor(projection.ScenarioBull)*100)
	}
	b.WriteString("\n")
}

func writeMarginSection(b *strings.Builder, set *assumption.AssumptionSet) {
	p := set.Parameters
	fmt.Fprintf(b, "### Margin Assumptions\n\n")
	fmt.Fprintf(b, "| | Bear | Base | Bull |\n|---|---|---|---|\n")
	fmt.Fprintf(b, "| Final Operating Margin (%%) | %.1f | %.1f | %.1f |\n\n",
		p.FinalMarginFor(projection.ScenarioBear)*100,
		p.FinalMarginFor(projection.ScenarioBase)*100,
		p.FinalMarginFor(projection.ScenarioBull)*100)
}

func writeProjectionTables(b *strings.Builder, results map[projection.Scenario]projection.Result) {
	fmt.Fprintf(b, "## Financial Projections\n\n")
	for _, s := range projection.Scenarios() {
		res := results[s]
		fmt.Fprintf(b, "### %s Case\n\n", title(string(s)))
		fmt.Fprintf(b, "| Year | Revenue ($M) | Net Income ($M) | EPS ($) | Implied Price ($) |\n|---|---|---|---|---|\n")
		for _, row := range res.Rows {
			fmt.Fprintf(b, "| %d | %s | %s | %.2f | %.2f |\n",
				row.Year, money(row.Revenue), money(row.Earnings), row.EPS, row.ImpliedPrice)
		}
		b.WriteString("\n")
	}
}

func writeSummarySection(b *strings.Builder, results map[projection.Scenario]projection.Result) {
	summaries := calc.Summarize(results)

	fmt.Fprintf(b, "## Projected Growth\n\n")
	fmt.Fprintf(b, "| Metric | Bear | Base | Bull |\n|---|---|---|---|\n")

	fmt.Fprintf(b, "| Revenue ($M) |")
	for _, s := range summaries {
		fmt.Fprintf(b, " %s |", money(s.FinalRevenue))
	}
	fmt.Fprintf(b, "\n| Revenue CAGR (%%) |")
	for _, s := range summaries {
		fmt.Fprintf(b, " %.1f |", s.RevenueCAGR*100)
	}
	fmt.Fprintf(b, "\n| Final-Year Revenue YoY (%%) |")
	for _, s := range projection.Scenarios() {
		yoy := validate.RevenueYoY(results[s])
		if len(yoy) == 0 {
			fmt.Fprintf(b, " 0.0 |")
			continue
		}
		fmt.Fprintf(b, " %.1f |", yoy[len(yoy)-1].ChangePct)
	}
	fmt.Fprintf(b, "\n| EPS ($) |")
	for _, s := range summaries {
		fmt.Fprintf(b, " %.2f |", s.FinalEPS)
	}
	fmt.Fprintf(b, "\n| Implied Price ($) |")
	for _, s := range summaries {
		fmt.Fprintf(b, " %.2f |", s.FinalPrice)
	}
	b.WriteString("\n\n")
}

func writePriceMatrix(b *strings.Builder, matrix calc.PriceMatrix) {
	fmt.Fprintf(b, "## Projected Stock Prices\n\n")
	fmt.Fprintf(b, "| PE Ratio | Bear Price ($) | Base Price ($) | Bull Price ($) |\n|---|---|---|---|\n")

	byKey := make(map[string]float64, len(matrix.Cells))
	for _, c := range matrix.Cells {
		byKey[fmt.Sprintf("%s/%.0f", c.Scenario, c.PERatio)] = c.Price
	}
	for _, ratio := range matrix.Ratios {
		fmt.Fprintf(b, "| %.0f |", ratio)
		for _, s := range projection.Scenarios() {
			fmt.Fprintf(b, " %.2f |", byKey[fmt.Sprintf("%s/%.0f", s, ratio)])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// money formats a $M figure with thousands separators and two decimals.
func money(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var out []string
	for len(intPart) > 3 {
		out = append([]string{intPart[len(intPart)-3:]}, out...)
		intPart = intPart[:len(intPart)-3]
	}
	out = append([]string{intPart}, out...)

	result := strings.Join(out, ",") + frac
	if neg {
		result = "-" + result
	}
	return result
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
