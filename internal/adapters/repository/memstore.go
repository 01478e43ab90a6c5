package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/dataset"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/view"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/pkg/logger"
	"github.com/AhmedKamal-41/dashboard-demo-streamlit/pkg/metrics"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// Consecutive editor saves arrive as bursts of fsnotify events; reloads
// within this window are coalesced into one.
const reloadDebounce = 250 * time.Millisecond

// MemoryStore keeps the current snapshot in memory. The snapshot pointer is
// swapped whole under the mutex, so readers never observe a partial load.
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot *Snapshot
	closed   bool

	watcher   *fsnotify.Watcher
	watchOnce sync.Once

	logger logger.Logger
}

// NewMemoryStore creates an empty store with configuration options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Snapshot returns the current snapshot, or ErrDataUnavailable before the
// first successful load.
func (s *MemoryStore) Snapshot(_ context.Context) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, ErrDataUnavailable
	}
	return s.snapshot, nil
}

// LoadFile decodes and publishes the dataset at path.
func (s *MemoryStore) LoadFile(ctx context.Context, path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			metrics.RecordDatasetLoadError()
			return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, path)
		}
		metrics.RecordDatasetLoadError()
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	return s.publish(ctx, f, path)
}

// LoadReader decodes and publishes a dataset from r.
func (s *MemoryStore) LoadReader(ctx context.Context, r io.Reader, source string) (*Snapshot, error) {
	return s.publish(ctx, r, source)
}

// publish decodes r and swaps in a fresh snapshot on success. A decode
// failure leaves the previous snapshot in place.
func (s *MemoryStore) publish(ctx context.Context, r io.Reader, source string) (*Snapshot, error) {
	start := time.Now()
	records, err := dataset.Decode(r)
	if err != nil {
		metrics.RecordDatasetLoadError()
		return nil, err
	}

	snap := &Snapshot{
		ID:            uuid.New().String(),
		Source:        source,
		Records:       records,
		Rows:          len(records),
		DistinctClubs: view.DistinctClubCount(records),
		MissingYears:  dataset.MissingYearCount(records),
		LoadedAt:      time.Now(),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrStoreClosed
	}
	s.snapshot = snap
	s.mu.Unlock()

	metrics.RecordDatasetLoad()
	metrics.RecordDatasetLoadDuration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateDatasetRows(snap.Rows)
	metrics.UpdateDatasetDistinctClubs(snap.DistinctClubs)
	metrics.UpdateDatasetMissingYears(snap.MissingYears)

	s.logger.Info(ctx, "dataset published",
		logger.String("snapshot", snap.ID),
		logger.String("source", source),
		logger.Int("rows", snap.Rows),
		logger.Int("distinctClubs", snap.DistinctClubs),
		logger.Int("missingYears", snap.MissingYears),
	)
	return snap, nil
}

// Watch installs an fsnotify watcher on the dataset file's directory and
// reloads on changes to the file itself. Watching the directory instead of
// the file keeps the watch alive across editors that replace the file on
// save.
func (s *MemoryStore) Watch(ctx context.Context, path string) error {
	var installErr error
	s.watchOnce.Do(func() {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			installErr = fmt.Errorf("create watcher: %w", err)
			return
		}
		if err := w.Add(filepath.Dir(path)); err != nil {
			_ = w.Close()
			installErr = fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
			return
		}

		s.mu.Lock()
		s.watcher = w
		s.mu.Unlock()

		go s.watchLoop(ctx, w, path)
	})
	return installErr
}

func (s *MemoryStore) watchLoop(ctx context.Context, w *fsnotify.Watcher, path string) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	reload := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(reloadDebounce, func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(reloadDebounce)
			}
		case <-reload:
			if _, err := s.LoadFile(ctx, path); err != nil {
				s.logger.Warn(ctx, "dataset reload failed; keeping previous snapshot",
					logger.String("path", path),
					logger.Error(err),
				)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.logger.Warn(ctx, "dataset watcher error", logger.Error(err))
		}
	}
}

// Close stops the watcher, if any. The cached snapshot stays readable.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
