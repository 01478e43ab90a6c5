// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	service "github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/app"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/view"
)

// HeatmapDependencies defines the interface for heatmap computation
type HeatmapDependencies interface {
	Heatmap(ctx context.Context, n int) (service.HeatmapView, error)
}

// HeatmapHandler handles heatmap requests
type HeatmapHandler struct {
	deps HeatmapDependencies
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(deps HeatmapDependencies) *HeatmapHandler {
	return &HeatmapHandler{deps: deps}
}

type heatmapResponse struct {
	Selected int                `json:"selected"`
	Min      int                `json:"min"`
	Max      int                `json:"max"`
	Default  int                `json:"default"`
	Clubs    []string           `json:"clubs"`
	Cells    []view.HeatmapCell `json:"cells"`
}

// HandleGetHeatmap handles GET /api/heatmap?top=N requests. The top
// parameter is optional; out-of-range values are clamped, never rejected.
func (h *HeatmapHandler) HandleGetHeatmap(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_heatmap"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := 0
	if topStr := r.URL.Query().Get("top"); topStr != "" {
		parsed, err := strconv.Atoi(topStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		n = parsed
	}
	hv, err := h.deps.Heatmap(r.Context(), n)
	if err != nil {
		writeViewError(w, op, err)
		return
	}
	if hv.Clubs == nil {
		hv.Clubs = []string{}
	}
	if hv.Cells == nil {
		hv.Cells = []view.HeatmapCell{}
	}
	writeJSON(w, http.StatusOK, heatmapResponse{
		Selected: hv.Selected,
		Min:      hv.Min,
		Max:      hv.Max,
		Default:  hv.Default,
		Clubs:    hv.Clubs,
		Cells:    hv.Cells,
	})
}
