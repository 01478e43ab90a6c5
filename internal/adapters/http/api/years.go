// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// YearsDependencies defines the interface for year listing
type YearsDependencies interface {
	Years(ctx context.Context) ([]int, error)
}

// YearsHandler handles year listing requests
type YearsHandler struct {
	deps YearsDependencies
}

// NewYearsHandler creates a new years handler
func NewYearsHandler(deps YearsDependencies) *YearsHandler {
	return &YearsHandler{deps: deps}
}

// HandleGetYears handles GET /api/years requests
func (h *YearsHandler) HandleGetYears(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_years"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	years, err := h.deps.Years(r.Context())
	if err != nil {
		writeViewError(w, op, err)
		return
	}
	if years == nil {
		years = []int{}
	}
	writeJSON(w, http.StatusOK, years)
}
