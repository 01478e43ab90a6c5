// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/view"
)

// BarDependencies defines the interface for the bar chart ranking
type BarDependencies interface {
	BarRanking(ctx context.Context) ([]view.ClubTitles, error)
}

// BarHandler handles bar chart ranking requests
type BarHandler struct {
	deps BarDependencies
}

// NewBarHandler creates a new bar handler
func NewBarHandler(deps BarDependencies) *BarHandler {
	return &BarHandler{deps: deps}
}

// HandleGetBar handles GET /api/bar requests
func (h *BarHandler) HandleGetBar(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_bar"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	bars, err := h.deps.BarRanking(r.Context())
	if err != nil {
		writeViewError(w, op, err)
		return
	}
	if bars == nil {
		bars = []view.ClubTitles{}
	}
	writeJSON(w, http.StatusOK, bars)
}
