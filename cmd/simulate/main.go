package main

import (
	"flag"
	"fmt"
	"os"

	"stock_projection/pkg/core/assumption"
	"stock_projection/pkg/core/calc"
	"stock_projection/pkg/core/chart"
	"stock_projection/pkg/core/projection"
	"stock_projection/pkg/core/report"
	"stock_projection/pkg/core/validate"
)

// Logger helper
func logStep(step string, details string) {
	fmt.Printf("\n[STEP] %s\n", step)
	fmt.Println("---------------------------------------------------------")
	fmt.Println(details)
	fmt.Println("---------------------------------------------------------")
}

func main() {
	scenarioPath := flag.String("scenario", "", "scenario file (JSON or HJSON); built-in defaults when empty")
	reportPath := flag.String("report", "", "write the markdown report to this file")
	flag.Parse()

	logStep("1. Load Assumptions", "Reading the assumption set...")

	var set *assumption.AssumptionSet
	var err error
	if *scenarioPath != "" {
		set, err = assumption.LoadFile(*scenarioPath)
		if err != nil {
			fmt.Printf("[FATAL] %v\n", err)
			os.Exit(1)
		}
		fmt.Printf(" [Data] Loaded scenario file: %s\n", *scenarioPath)
	} else {
		set = assumption.Default()
		fmt.Println(" [Data] Using built-in defaults")
	}
	fmt.Printf(" [Data] Company: %s, Streams: %d, Years: %d\n",
		set.Company, len(set.Streams), set.Parameters.Years)
	fmt.Printf(" [Data] Current Total Revenue: %.2f $M\n", set.TotalBaseRevenue())

	logStep("2. Run Projection", "Projecting all scenarios...")

	results, err := projection.Project(set.Streams, set.Parameters)
	if err != nil {
		fmt.Printf("[FATAL] Projection failed: %v\n", err)
		os.Exit(1)
	}
	for _, s := range projection.Scenarios() {
		if err := validate.CheckRowContinuity(results[s]); err != nil {
			fmt.Printf("[WARNING] Table check failed: %v\n", err)
		}
	}

	startYear := chart.CurrentStartYear()
	for _, s := range projection.Scenarios() {
		res := results[s]
		fmt.Printf("\n--- %s case ---\n", s)
		fmt.Printf("%-6s %14s %14s %10s %10s\n", "Year", "Revenue ($M)", "Income ($M)", "EPS ($)", "Price ($)")
		for _, row := range res.Rows {
			fmt.Printf("%-6d %14.2f %14.2f %10.2f %10.2f\n",
				startYear+row.Year, row.Revenue, row.Earnings, row.EPS, row.ImpliedPrice)
		}
	}

	logStep("3. Price Sensitivity", "Final-year implied prices across PE ratios")

	matrix := calc.BuildPriceMatrix(results, nil)
	fmt.Printf("%-10s %12s %12s %12s\n", "PE Ratio", "Bear ($)", "Base ($)", "Bull ($)")
	for _, ratio := range matrix.Ratios {
		fmt.Printf("%-10.0f", ratio)
		for _, s := range projection.Scenarios() {
			for _, cell := range matrix.Cells {
				if cell.Scenario == s && cell.PERatio == ratio {
					fmt.Printf(" %12.2f", cell.Price)
				}
			}
		}
		fmt.Println()
	}

	if *reportPath != "" {
		logStep("4. Export Report", "Writing markdown report...")
		doc := report.BuildMarkdown(set, results, matrix)
		if err := os.WriteFile(*reportPath, []byte(doc), 0644); err != nil {
			fmt.Printf("[FATAL] Failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf(" [Report] Written to %s\n", *reportPath)
	}
}
