// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/adapters/repository"
	service "github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/app"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/model"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/view"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Read operations expose the derived dashboard views.
	Years(ctx context.Context) ([]int, error)
	Champions(ctx context.Context, year int) ([]model.ChampionRecord, error)
	TitlesByCountry(ctx context.Context, year int) ([]view.CountryTitles, error)
	Tally(ctx context.Context) ([]view.ClubTitles, error)
	BarRanking(ctx context.Context) ([]view.ClubTitles, error)
	Heatmap(ctx context.Context, n int) (service.HeatmapView, error)
	Themes(ctx context.Context) ([]string, string)

	// Dataset operations replace or inspect the cached dataset.
	UploadDataset(ctx context.Context, r io.Reader) (*repository.Snapshot, error)
	DatasetInfo(ctx context.Context) (*repository.Snapshot, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	yearsHandler      *YearsHandler
	themesHandler     *ThemesHandler
	championsHandler  *ChampionsHandler
	choroplethHandler *ChoroplethHandler
	heatmapHandler    *HeatmapHandler
	tallyHandler      *TallyHandler
	barHandler        *BarHandler
	datasetHandler    *DatasetHandler
	dashboardHandler  *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxUploadBytes int64) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		yearsHandler:      NewYearsHandler(deps),
		themesHandler:     NewThemesHandler(deps),
		championsHandler:  NewChampionsHandler(deps),
		choroplethHandler: NewChoroplethHandler(deps),
		heatmapHandler:    NewHeatmapHandler(deps),
		tallyHandler:      NewTallyHandler(deps),
		barHandler:        NewBarHandler(deps),
		datasetHandler:    NewDatasetHandler(deps, maxUploadBytes),
		dashboardHandler:  newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/years", MetricsMiddleware(s.yearsHandler.HandleGetYears, "years"))
	mux.HandleFunc("/api/themes", MetricsMiddleware(s.themesHandler.HandleGetThemes, "themes"))
	mux.HandleFunc("/api/champions", MetricsMiddleware(s.championsHandler.HandleGetChampions, "champions"))
	mux.HandleFunc("/api/choropleth", MetricsMiddleware(s.choroplethHandler.HandleGetChoropleth, "choropleth"))
	mux.HandleFunc("/api/heatmap", MetricsMiddleware(s.heatmapHandler.HandleGetHeatmap, "heatmap"))
	mux.HandleFunc("/api/tally", MetricsMiddleware(s.tallyHandler.HandleGetTally, "tally"))
	mux.HandleFunc("/api/bar", MetricsMiddleware(s.barHandler.HandleGetBar, "bar"))
	mux.HandleFunc("/api/dataset", MetricsMiddleware(s.datasetHandler.HandleDataset, "dataset"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeViewError maps a failed view computation to the wire. A dataset that
// has not been loaded yet surfaces as 503 so clients can prompt for an
// upload; anything else is a server fault.
func writeViewError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, repository.ErrDataUnavailable) {
		writeError(w, http.StatusServiceUnavailable, "data_unavailable", Wrap(op, err))
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
}
