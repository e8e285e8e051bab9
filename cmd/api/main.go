package main

import (
	"fmt"
	"net/http"
	"os"

	"stock_projection/pkg/api/chart"
	"stock_projection/pkg/api/defaults"
	"stock_projection/pkg/api/projection"
	"stock_projection/pkg/api/report"
	"stock_projection/pkg/config"
	"stock_projection/pkg/core/assumption"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("[FATAL] Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Default assumption set: YAML file when present, built-ins otherwise.
	defaultSet, err := assumption.LoadDefaults(cfg.DefaultsPath)
	if err != nil {
		fmt.Printf("[FATAL] Failed to load defaults from %s: %v\n", cfg.DefaultsPath, err)
		os.Exit(1)
	}
	fmt.Printf("[CONFIG] Defaults loaded: %s, %d streams\n", defaultSet.Company, len(defaultSet.Streams))

	// Defaults endpoint
	defaultsHandler := defaults.NewHandler(defaultSet)
	http.HandleFunc("/api/defaults", defaultsHandler.HandleDefaults)

	// Projection endpoints
	http.HandleFunc("/api/projection/run", projection.HandleRun)

	// Chart endpoints
	http.HandleFunc("/api/chart/series", chart.HandleSeries)

	// Report endpoints
	http.HandleFunc("/api/report/markdown", report.HandleMarkdown)
	http.HandleFunc("/api/report/html", report.HandleHTML)

	addr := ":" + cfg.Port
	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - GET  /api/defaults")
	fmt.Println("  - POST /api/projection/run")
	fmt.Println("  - POST /api/chart/series")
	fmt.Println("  - POST /api/report/markdown")
	fmt.Println("  - POST /api/report/html")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
