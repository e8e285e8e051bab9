// Package projection exposes the projection engine over HTTP. It is the
// input-collection surface: plain structured values in, result tables out,
// nothing retained between requests.
package projection

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"stock_projection/pkg/core/assumption"
	"stock_projection/pkg/core/calc"
	coreprojection "stock_projection/pkg/core/projection"
)

// RunResponse is the full projection payload for one invocation.
type RunResponse struct {
	RunID       string                                            `json:"run_id"`
	Company     string                                            `json:"company"`
	GeneratedAt time.Time                                         `json:"generated_at"`
	Results     map[coreprojection.Scenario]coreprojection.Result `json:"results"`
	Summary     []calc.ScenarioSummary                            `json:"summary"`
	PriceMatrix calc.PriceMatrix                                  `json:"price_matrix"`
}

// HandleRun computes a projection from the posted assumption set.
func HandleRun(w http.ResponseWriter, r *http.Request) {
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
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	resp := RunResponse{
		RunID:       uuid.NewString(),
		Company:     set.Company,
		GeneratedAt: time.Now().UTC(),
		Results:     results,
		Summary:     calc.Summarize(results),
		PriceMatrix: calc.BuildPriceMatrix(results, nil),
	}

	fmt.Printf("[PROJECTION] Run %s: %s, %d streams, %d years\n",
		resp.RunID, set.Company, len(set.Streams), set.Parameters.Years)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// statusFor maps engine errors to HTTP status codes. Both error kinds are
// caller mistakes, not server faults.
func statusFor(err error) int {
	if errors.Is(err, coreprojection.ErrEmptyInput) || coreprojection.IsInvalidInput(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
