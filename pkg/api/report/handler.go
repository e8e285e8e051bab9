// Package report serves downloadable projection reports in markdown or HTML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"stock_projection/pkg/core/assumption"
	"stock_projection/pkg/core/calc"
	coreprojection "stock_projection/pkg/core/projection"
	corereport "stock_projection/pkg/core/report"
)

// HandleMarkdown builds the report and returns it as a markdown download.
func HandleMarkdown(w http.ResponseWriter, r *http.Request) {
	serveReport(w, r, "markdown")
}

// HandleHTML builds the report and returns it rendered to HTML.
func HandleHTML(w http.ResponseWriter, r *http.Request) {
	serveReport(w, r, "html")
}

func serveReport(w http.ResponseWriter, r *http.Request, format string) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var set assumption.AssumptionSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := coreprojection.Project(set.Streams, set.Parameters)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, coreprojection.ErrEmptyInput) || coreprojection.IsInvalidInput(err) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	matrix := calc.BuildPriceMatrix(results, nil)
	markdown := corereport.BuildMarkdown(&set, results, matrix)

	stamp := time.Now().Format("20060102")
	switch format {
	case "html":
		html, err := corereport.RenderHTML(markdown)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
	default:
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%s_stock_projection_%s.md", set.Company, stamp))
		fmt.Fprint(w, markdown)
	}

	fmt.Printf("[REPORT] Exported %s report for %s\n", format, set.Company)
}
