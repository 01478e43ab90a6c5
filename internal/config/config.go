// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

// Default upload cap. A champions CSV is a few KB; anything near this
// limit is almost certainly the wrong file.
const defaultMaxUploadBytes = 10 << 20

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// DatasetPath is the CSV the service loads at startup. A missing file is
	// not fatal; the dashboard prompts for an upload instead.
	DatasetPath string `koanf:"dataset_path"`

	// WatchDataset reloads the dataset when the file changes on disk.
	WatchDataset bool `koanf:"watch_dataset"`

	// MinTopClubs and MaxTopClubs bound the heatmap top-N selector.
	MinTopClubs int `koanf:"min_top_clubs"`
	MaxTopClubs int `koanf:"max_top_clubs"`

	// DefaultTopClubs is the initial top-N value, capped by the distinct
	// club count of the loaded dataset.
	DefaultTopClubs int `koanf:"default_top_clubs"`

	// DefaultTheme names the initial color theme for the charts.
	DefaultTheme string `koanf:"default_theme"`

	// MaxUploadBytes caps the request body of POST /api/dataset.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
}

// New creates a Config populated with defaults.
func New() *Config {
	c := &Config{
		LogLevel:        "info",
		Addr:            ":9090",
		DatasetPath:     "data/soccer_data.csv",
		WatchDataset:    true,
		MinTopClubs:     5,
		MaxTopClubs:     50,
		DefaultTopClubs: 20,
		DefaultTheme:    "blues",
		MaxUploadBytes:  defaultMaxUploadBytes,
	}
	return c
}
