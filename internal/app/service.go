// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/adapters/repository"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/model"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/view"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/pkg/logger"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/pkg/metrics"
)

// Default selector bounds, matching the dashboard's slider.
const (
	defaultMinTopClubs     = 5
	defaultMaxTopClubs     = 50
	defaultInitialTopClubs = 20
)

// HeatmapView bundles the heatmap cells with the slider bounds the
// presentation layer needs to render the top-N control.
type HeatmapView struct {
	// Selected is the clamped top-N value actually applied.
	Selected int
	// Min, Max, Default are the slider bounds for the current dataset.
	Min     int
	Max     int
	Default int
	// Clubs lists the selected top clubs, most titled first.
	Clubs []string
	// Cells holds the year x club title counts.
	Cells []view.HeatmapCell
}

// Service implements the dashboard's derived views over the cached dataset.
type Service struct {
	mu sync.RWMutex

	store repository.Store

	// Configuration
	datasetPath     string
	watchDataset    bool
	minTopClubs     int
	maxTopClubs     int
	defaultTopClubs int
	defaultTheme    string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDatasetPath sets the CSV file loaded at startup.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.datasetPath = path
		}
	}
}

// WithDatasetWatch enables or disables reloading on file changes.
func WithDatasetWatch(watch bool) Option {
	return func(s *Service) {
		s.watchDataset = watch
	}
}

// WithTopClubBounds sets the slider bounds for the heatmap top-N selector.
func WithTopClubBounds(minN, maxN int) Option {
	return func(s *Service) {
		if minN > 0 && maxN >= minN {
			s.minTopClubs = minN
			s.maxTopClubs = maxN
		}
	}
}

// WithDefaultTopClubs sets the initial top-N value.
func WithDefaultTopClubs(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultTopClubs = n
		}
	}
}

// WithDefaultTheme sets the initial color theme.
func WithDefaultTheme(theme string) Option {
	return func(s *Service) {
		if view.ValidTheme(theme) {
			s.defaultTheme = theme
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		minTopClubs:     defaultMinTopClubs,
		maxTopClubs:     defaultMaxTopClubs,
		defaultTopClubs: defaultInitialTopClubs,
		defaultTheme:    view.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the dataset store and attempts the initial load.
// A missing dataset file is not fatal: the dashboard prompts for an upload
// and the API reports the dataset as unavailable until one arrives. Any
// other load failure (e.g. a broken schema) aborts startup.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	s.store = repository.NewMemoryStore(repository.WithLogger(s.logger))

	if s.datasetPath != "" {
		if _, err := s.store.LoadFile(ctx, s.datasetPath); err != nil {
			if !errors.Is(err, repository.ErrDataUnavailable) {
				return err
			}
			s.logger.Warn(ctx, "dataset not found; waiting for upload",
				logger.String("path", s.datasetPath),
			)
		}
		if s.watchDataset {
			if err := s.store.Watch(ctx, s.datasetPath); err != nil {
				s.logger.Warn(ctx, "dataset watch unavailable", logger.Error(err))
			}
		}
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.String("datasetPath", s.datasetPath),
		logger.Bool("watch", s.watchDataset),
		logger.Int("minTopClubs", s.minTopClubs),
		logger.Int("maxTopClubs", s.maxTopClubs),
	)
	return nil
}

// Stop shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping dashboard service...")
	if s.store != nil {
		_ = s.store.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// records returns the current snapshot's records.
func (s *Service) records(ctx context.Context) ([]model.ChampionRecord, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Records, nil
}

// timeView records computation metrics around a derived view.
func timeView(name string, compute func()) {
	start := time.Now()
	compute()
	metrics.RecordViewComputation(name)
	metrics.RecordViewLatency(name, float64(time.Since(start).Milliseconds()))
}

// Years returns the selectable years, newest first.
func (s *Service) Years(ctx context.Context) ([]int, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	var years []int
	timeView("years", func() { years = view.Years(records) })
	return years, nil
}

// Champions returns the records of a single season, sorted by club.
func (s *Service) Champions(ctx context.Context, year int) ([]model.ChampionRecord, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	var slice []model.ChampionRecord
	timeView("year_slice", func() { slice = view.YearSlice(records, year) })
	if len(slice) == 0 {
		metrics.RecordViewEmptyResult()
	}
	return slice, nil
}

// TitlesByCountry returns per-country title counts for one season, with
// country names in canonical form. An empty result means the selected year
// has no rows; that is a valid state, not an error.
func (s *Service) TitlesByCountry(ctx context.Context, year int) ([]view.CountryTitles, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	var titles []view.CountryTitles
	timeView("country_titles", func() {
		titles = view.TitlesByCountry(view.YearSlice(records, year))
	})
	if len(titles) == 0 {
		metrics.RecordViewEmptyResult()
	}
	return titles, nil
}

// Tally returns the all-time winners tally, titles descending.
func (s *Service) Tally(ctx context.Context) ([]view.ClubTitles, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	var tally []view.ClubTitles
	timeView("tally", func() { tally = view.Tally(records) })
	return tally, nil
}

// BarRanking returns the per-club titles ordered for bottom-to-top bars.
func (s *Service) BarRanking(ctx context.Context) ([]view.ClubTitles, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	var bars []view.ClubTitles
	timeView("bar_ranking", func() { bars = view.BarRanking(records) })
	return bars, nil
}

// Heatmap returns the year x club heatmap restricted to the top-N clubs.
// The requested n is clamped to the slider bounds for the current dataset.
func (s *Service) Heatmap(ctx context.Context, n int) (HeatmapView, error) {
	records, err := s.records(ctx)
	if err != nil {
		return HeatmapView{}, err
	}

	var hv HeatmapView
	timeView("heatmap", func() {
		distinct := view.DistinctClubCount(records)
		maxN := s.maxTopClubs
		if distinct < maxN {
			maxN = distinct
		}
		if maxN < s.minTopClubs {
			maxN = s.minTopClubs
		}
		defaultN := s.defaultTopClubs
		if defaultN > maxN {
			defaultN = maxN
		}
		if n <= 0 {
			n = defaultN
		}
		selected := view.ClampTopN(n, distinct, s.minTopClubs, s.maxTopClubs)
		clubs := view.TopClubs(records, selected)
		hv = HeatmapView{
			Selected: selected,
			Min:      s.minTopClubs,
			Max:      maxN,
			Default:  defaultN,
			Clubs:    clubs,
			Cells:    view.HeatmapCells(records, clubs),
		}
	})
	return hv, nil
}

// Themes returns the palette and the configured default theme.
func (s *Service) Themes(_ context.Context) ([]string, string) {
	return view.Themes, s.defaultTheme
}

// UploadDataset replaces the cached dataset with an uploaded CSV.
func (s *Service) UploadDataset(ctx context.Context, r io.Reader) (*repository.Snapshot, error) {
	snap, err := s.store.LoadReader(ctx, r, "upload")
	if err != nil {
		metrics.RecordDatasetUploadError()
		return nil, err
	}
	metrics.RecordDatasetUpload()
	return snap, nil
}

// DatasetInfo returns metadata about the current snapshot.
func (s *Service) DatasetInfo(ctx context.Context) (*repository.Snapshot, error) {
	return s.store.Snapshot(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"datasetPath": s.datasetPath,
		"watch":       s.watchDataset,
	}

	if s.started {
		snap, err := s.store.Snapshot(context.Background())
		stats["dataAvailable"] = err == nil
		if err == nil {
			stats["snapshotId"] = snap.ID
			stats["source"] = snap.Source
			stats["rows"] = snap.Rows
			stats["distinctClubs"] = snap.DistinctClubs
			stats["missingYears"] = snap.MissingYears
			stats["loadedAt"] = snap.LoadedAt
		}
	}

	return stats
}
