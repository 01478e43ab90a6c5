// Package repository caches the loaded dataset and publishes immutable snapshots.
package repository

import (
	"context"
	"io"
	"time"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/model"
)

// Snapshot is one immutable load of the dataset. Readers share the record
// slice and must not mutate it; a reload publishes a fresh snapshot instead
// of touching the old one.
type Snapshot struct {
	// ID uniquely identifies this load.
	ID string
	// Source is the file path the snapshot came from, or "upload".
	Source string
	// Records holds every champion record of the dataset.
	Records []model.ChampionRecord
	// Rows is len(Records), kept for stats without touching the slice.
	Rows int
	// DistinctClubs is the number of distinct champion clubs.
	DistinctClubs int
	// MissingYears counts records whose year failed coercion.
	MissingYears int
	// LoadedAt is when the snapshot was published.
	LoadedAt time.Time
}

// Store provides read access to the cached dataset and load entry points.
type Store interface {
	// Snapshot returns the current snapshot.
	// Returns ErrDataUnavailable until a load has succeeded.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// LoadFile decodes and publishes the dataset at path.
	// A missing file maps to ErrDataUnavailable.
	LoadFile(ctx context.Context, path string) (*Snapshot, error)

	// LoadReader decodes and publishes a dataset from r, e.g. an upload.
	LoadReader(ctx context.Context, r io.Reader, source string) (*Snapshot, error)

	// Watch reloads the dataset whenever the file at path changes.
	// It returns once the watcher is installed; reloads happen in the
	// background until ctx is cancelled or the store is closed.
	Watch(ctx context.Context, path string) error

	// Close stops the watcher, if any.
	Close() error
}
