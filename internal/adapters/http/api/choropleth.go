// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/view"
)

// ChoroplethDependencies defines the interface for map aggregations
type ChoroplethDependencies interface {
	TitlesByCountry(ctx context.Context, year int) ([]view.CountryTitles, error)
}

// ChoroplethHandler handles choropleth aggregation requests
type ChoroplethHandler struct {
	deps ChoroplethDependencies
}

// NewChoroplethHandler creates a new choropleth handler
func NewChoroplethHandler(deps ChoroplethDependencies) *ChoroplethHandler {
	return &ChoroplethHandler{deps: deps}
}

type choroplethResponse struct {
	Year      int                  `json:"year"`
	NoData    bool                 `json:"no_data"`
	Countries []view.CountryTitles `json:"countries"`
}

// HandleGetChoropleth handles GET /api/choropleth?year=Y requests.
// A year with no rows is a valid selection: the response carries an empty
// country list and no_data=true rather than an error status.
func (h *ChoroplethHandler) HandleGetChoropleth(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_choropleth"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	countries, err := h.deps.TitlesByCountry(r.Context(), year)
	if err != nil {
		writeViewError(w, op, err)
		return
	}
	if countries == nil {
		countries = []view.CountryTitles{}
	}
	writeJSON(w, http.StatusOK, choroplethResponse{
		Year:      year,
		NoData:    len(countries) == 0,
		Countries: countries,
	})
}
