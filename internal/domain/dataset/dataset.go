// Package dataset decodes the champions CSV into domain records.
//
// The dataset is a flat table with the required columns country, year,
// state (champion club) and region (league name). Column names are matched
// case-insensitively after trimming; extra columns are ignored. The schema
// is validated before any row is decoded so a malformed file fails fast
// instead of surfacing as a broken aggregation later.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/model"
)

// Required dataset columns, in canonical (lower-case) form.
const (
	ColumnCountry = "country"
	ColumnYear    = "year"
	ColumnState   = "state"
	ColumnRegion  = "region"
)

// requiredColumns lists every column Decode insists on.
var requiredColumns = []string{ColumnCountry, ColumnYear, ColumnState, ColumnRegion}

// Decode reads a champions CSV and returns its records.
//
// Year values that fail numeric coercion become missing years, never
// errors. An unreadable row or an absent required column aborts the decode.
func Decode(r io.Reader) ([]model.ChampionRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []model.ChampionRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		records = append(records, model.ChampionRecord{
			Country: strings.TrimSpace(row[cols[ColumnCountry]]),
			Year:    coerceYear(row[cols[ColumnYear]]),
			Club:    strings.TrimSpace(row[cols[ColumnState]]),
			League:  strings.TrimSpace(row[cols[ColumnRegion]]),
		})
	}
	return records, nil
}

// columnIndex normalizes the header (trim + lower) and maps each required
// column to its position. Missing required columns are a schema error.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}
	return cols, nil
}

// coerceYear parses a year cell. Integer and float forms are accepted;
// anything else is a missing year.
func coerceYear(s string) model.Year {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.MissingYear()
	}
	if v, err := strconv.Atoi(s); err == nil {
		return model.NewYear(v)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return model.NewYear(int(f))
	}
	return model.MissingYear()
}

// MissingYearCount returns how many records carry a missing year.
func MissingYearCount(records []model.ChampionRecord) int {
	n := 0
	for _, rec := range records {
		if !rec.Year.Valid {
			n++
		}
	}
	return n
}
