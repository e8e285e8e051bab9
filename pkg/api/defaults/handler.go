// Package defaults serves the assumption set the input surface starts from.
package defaults

import (
	"encoding/json"
	"net/http"

	"stock_projection/pkg/core/assumption"
)

// Handler holds the defaults loaded at startup.
type Handler struct {
	Set *assumption.AssumptionSet
}

// NewHandler creates a defaults handler around a loaded assumption set.
func NewHandler(set *assumption.AssumptionSet) *Handler {
	return &Handler{Set: set}
}

// HandleDefaults returns the default assumption set.
func (h *Handler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Set)
}
