package repository

import "errors"

// Sentinel kinds for dataset store errors.
var (
	ErrDataUnavailable = errors.New("dataset unavailable")
	ErrStoreClosed     = errors.New("dataset store closed")
)
