package dataset

import "errors"

// Sentinel kinds for dataset decoding errors.
var (
	ErrMissingColumn = errors.New("required column missing")
	ErrEmptyDataset  = errors.New("dataset has no header row")
)
