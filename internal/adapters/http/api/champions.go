// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/model"
)

// ChampionsDependencies defines the interface for season lookups
type ChampionsDependencies interface {
	Champions(ctx context.Context, year int) ([]model.ChampionRecord, error)
}

// ChampionsHandler handles season champion requests
type ChampionsHandler struct {
	deps ChampionsDependencies
}

// NewChampionsHandler creates a new champions handler
func NewChampionsHandler(deps ChampionsDependencies) *ChampionsHandler {
	return &ChampionsHandler{deps: deps}
}

// HandleGetChampions handles GET /api/champions?year=Y requests
func (h *ChampionsHandler) HandleGetChampions(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_champions"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	records, err := h.deps.Champions(r.Context(), year)
	if err != nil {
		writeViewError(w, op, err)
		return
	}
	if records == nil {
		records = []model.ChampionRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}
