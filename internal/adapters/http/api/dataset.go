// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/adapters/repository"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/dataset"
)

// DatasetDependencies defines the interface for dataset inspection and upload
type DatasetDependencies interface {
	UploadDataset(ctx context.Context, r io.Reader) (*repository.Snapshot, error)
	DatasetInfo(ctx context.Context) (*repository.Snapshot, error)
}

// DatasetHandler handles dataset metadata and upload requests
type DatasetHandler struct {
	deps           DatasetDependencies
	maxUploadBytes int64
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(deps DatasetDependencies, maxUploadBytes int64) *DatasetHandler {
	return &DatasetHandler{deps: deps, maxUploadBytes: maxUploadBytes}
}

type datasetInfoResponse struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Rows          int       `json:"rows"`
	DistinctClubs int       `json:"distinct_clubs"`
	MissingYears  int       `json:"missing_years"`
	LoadedAt      time.Time `json:"loaded_at"`
}

type uploadResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
	Rows   int    `json:"rows"`
}

// HandleDataset dispatches GET and POST /api/dataset requests.
func (h *DatasetHandler) HandleDataset(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetInfo(w, r)
	case http.MethodPost:
		h.handleUpload(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleGetInfo handles GET /api/dataset requests.
func (h *DatasetHandler) handleGetInfo(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_dataset"
	snap, err := h.deps.DatasetInfo(r.Context())
	if err != nil {
		writeViewError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, datasetInfoResponse{
		ID:            snap.ID,
		Source:        snap.Source,
		Rows:          snap.Rows,
		DistinctClubs: snap.DistinctClubs,
		MissingYears:  snap.MissingYears,
		LoadedAt:      snap.LoadedAt,
	})
}

// handleUpload handles POST /api/dataset requests. The body is either a
// multipart form with a "file" part or the raw CSV itself.
func (h *DatasetHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_dataset"
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	body, err := h.uploadBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	defer func() { _ = body.Close() }()

	snap, err := h.deps.UploadDataset(r.Context(), body)
	if err != nil {
		if errors.Is(err, dataset.ErrMissingColumn) || errors.Is(err, dataset.ErrEmptyDataset) {
			writeError(w, http.StatusBadRequest, "schema_error", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusAccepted, uploadResponse{
		Status: "accepted",
		ID:     snap.ID,
		Rows:   snap.Rows,
	})
}

// uploadBody extracts the CSV stream from a multipart form or a raw body.
func (h *DatasetHandler) uploadBody(r *http.Request) (io.ReadCloser, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return r.Body, nil
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return nil, err
	}
	if mediaType != "multipart/form-data" {
		return r.Body, nil
	}
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return nil, err
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	return f, nil
}
