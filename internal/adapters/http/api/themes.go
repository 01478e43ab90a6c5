// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// ThemesDependencies defines the interface for theme listing
type ThemesDependencies interface {
	Themes(ctx context.Context) ([]string, string)
}

// ThemesHandler handles theme palette requests
type ThemesHandler struct {
	deps ThemesDependencies
}

// NewThemesHandler creates a new themes handler
func NewThemesHandler(deps ThemesDependencies) *ThemesHandler {
	return &ThemesHandler{deps: deps}
}

type themesResponse struct {
	Themes  []string `json:"themes"`
	Default string   `json:"default"`
}

// HandleGetThemes handles GET /api/themes requests
func (h *ThemesHandler) HandleGetThemes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	themes, def := h.deps.Themes(r.Context())
	writeJSON(w, http.StatusOK, themesResponse{Themes: themes, Default: def})
}
