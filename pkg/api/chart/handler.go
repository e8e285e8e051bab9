// Package chart serves plottable line series derived from a posted
// assumption set. The projection is recomputed on every call; the rendering
// surface owns nothing but the drawing.
package chart

import (
	"encoding/json"
	"errors"
	"net/http"

	"stock_projection/pkg/core/assumption"
	corechart "stock_projection/pkg/core/chart"
	coreprojection "stock_projection/pkg/core/projection"
)

// SeriesResponse groups the standard chart set by metric.
type SeriesResponse struct {
	StartYear int                                     `json:"start_year"`
	Charts    map[corechart.Metric][]corechart.Series `json:"charts"`
}

// HandleSeries computes chart series for all metrics from the posted
// assumption set.
func HandleSeries(w http.ResponseWriter, r *http.Request) {
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

	startYear := corechart.CurrentStartYear()
	resp := SeriesResponse{
		StartYear: startYear,
		Charts:    corechart.BuildAll(results, startYear),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
