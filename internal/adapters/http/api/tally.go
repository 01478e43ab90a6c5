// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/view"
)

// TallyDependencies defines the interface for the winners tally
type TallyDependencies interface {
	Tally(ctx context.Context) ([]view.ClubTitles, error)
}

// TallyHandler handles winners tally requests
type TallyHandler struct {
	deps TallyDependencies
}

// NewTallyHandler creates a new tally handler
func NewTallyHandler(deps TallyDependencies) *TallyHandler {
	return &TallyHandler{deps: deps}
}

// HandleGetTally handles GET /api/tally requests
func (h *TallyHandler) HandleGetTally(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_tally"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	tally, err := h.deps.Tally(r.Context())
	if err != nil {
		writeViewError(w, op, err)
		return
	}
	if tally == nil {
		tally = []view.ClubTitles{}
	}
	writeJSON(w, http.StatusOK, tally)
}
