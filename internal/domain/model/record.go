// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"strconv"
)

// ChampionRecord is one observation of a league title: a club winning a
// league in a country in a season. Fields mirror the dataset columns
// (country, year, state, region); "state" is the champion club and
// "region" is the league name.
type ChampionRecord struct {
	Country string `json:"country"`
	Year    Year   `json:"year"`
	Club    string `json:"club"`
	League  string `json:"league"`
}

// Year is a nullable season year. Rows whose year fails numeric coercion
// carry a missing Year rather than failing the load.
type Year struct {
	Int   int
	Valid bool
}

// NewYear returns a valid Year.
func NewYear(v int) Year {
	return Year{Int: v, Valid: true}
}

// MissingYear returns a missing Year.
func MissingYear() Year {
	return Year{}
}

// Equal reports whether y is valid and equals v.
func (y Year) Equal(v int) bool {
	return y.Valid && y.Int == v
}

// String renders the year, or an empty string when missing.
func (y Year) String() string {
	if !y.Valid {
		return ""
	}
	return strconv.Itoa(y.Int)
}

// MarshalJSON encodes a missing year as null.
func (y Year) MarshalJSON() ([]byte, error) {
	if !y.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(y.Int)), nil
}

// UnmarshalJSON decodes null or a number.
func (y *Year) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*y = Year{}
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*y = NewYear(v)
	return nil
}
