// Package view computes the derived views behind the dashboard panels.
//
// Every function here is a pure, deterministic function of the cached
// dataset and the current selection parameters. Views are recomputed in
// full on every interaction; nothing is cached between calls.
package view

import (
	"sort"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/domain/model"
)

// CountryTitles is one choropleth row: titles won in a country.
type CountryTitles struct {
	Country string `json:"country"`
	Titles  int    `json:"titles"`
}

// ClubTitles is one tally row: titles won by a club in a league.
type ClubTitles struct {
	Club   string `json:"club"`
	League string `json:"league"`
	Titles int    `json:"titles"`
}

// HeatmapCell is one year x club observation for the heatmap.
type HeatmapCell struct {
	Year   int    `json:"year"`
	Club   string `json:"club"`
	Titles int    `json:"titles"`
}

// Years returns the distinct non-missing years, newest first. This is the
// selector list; the first entry is the default selection.
func Years(records []model.ChampionRecord) []int {
	seen := make(map[int]struct{})
	var years []int
	for _, rec := range records {
		if !rec.Year.Valid {
			continue
		}
		if _, ok := seen[rec.Year.Int]; ok {
			continue
		}
		seen[rec.Year.Int] = struct{}{}
		years = append(years, rec.Year.Int)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// YearSlice returns the records of a single season, sorted by club
// ascending. A year not present in the data yields an empty slice.
func YearSlice(records []model.ChampionRecord, year int) []model.ChampionRecord {
	var out []model.ChampionRecord
	for _, rec := range records {
		if rec.Year.Equal(year) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Club < out[j].Club })
	return out
}

// DistinctClubCount returns the number of distinct champion clubs.
func DistinctClubCount(records []model.ChampionRecord) int {
	seen := make(map[string]struct{})
	for _, rec := range records {
		seen[rec.Club] = struct{}{}
	}
	return len(seen)
}

// TopClubs returns the n clubs with the most titles across the whole
// dataset, most titled first. Requesting more clubs than exist returns
// them all.
//
// The ordering of clubs with equal title counts is not part of the
// contract; equal counts are ordered by club name ascending so repeated
// renders are stable.
func TopClubs(records []model.ChampionRecord, n int) []string {
	if n <= 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Club]++
	}
	clubs := make([]string, 0, len(counts))
	for club := range counts {
		clubs = append(clubs, club)
	}
	sort.Slice(clubs, func(i, j int) bool {
		if counts[clubs[i]] != counts[clubs[j]] {
			return counts[clubs[i]] > counts[clubs[j]]
		}
		return clubs[i] < clubs[j]
	})
	if n < len(clubs) {
		clubs = clubs[:n]
	}
	return clubs
}

// ClampTopN bounds a requested top-N value to [minN, min(maxN, distinct)].
// The lower bound wins when fewer than minN clubs exist, matching the
// slider's fixed minimum.
func ClampTopN(n, distinct, minN, maxN int) int {
	upper := maxN
	if distinct < upper {
		upper = distinct
	}
	if n > upper {
		n = upper
	}
	if n < minN {
		n = minN
	}
	return n
}

// TitlesByCountry counts titles per country over a year slice, with
// country names remapped to their canonical form first. An empty slice in
// is an empty slice out; the caller distinguishes that from "no dataset".
func TitlesByCountry(records []model.ChampionRecord) []CountryTitles {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[CanonicalCountry(rec.Country)]++
	}
	out := make([]CountryTitles, 0, len(counts))
	for country, titles := range counts {
		out = append(out, CountryTitles{Country: country, Titles: titles})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}

// Tally counts titles per (club, league) over the whole dataset, sorted by
// titles descending then club ascending. The winners tally table renders
// this directly.
func Tally(records []model.ChampionRecord) []ClubTitles {
	out := countClubTitles(records)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Titles != out[j].Titles {
			return out[i].Titles > out[j].Titles
		}
		return out[i].Club < out[j].Club
	})
	return out
}

// BarRanking is the tally reordered for bottom-to-top horizontal bars:
// titles ascending, club ascending within equal counts.
func BarRanking(records []model.ChampionRecord) []ClubTitles {
	out := countClubTitles(records)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Titles != out[j].Titles {
			return out[i].Titles < out[j].Titles
		}
		return out[i].Club < out[j].Club
	})
	return out
}

// HeatmapCells counts titles per (year, club) restricted to the given
// clubs, skipping records with a missing year. Cells are ordered year
// descending then club ascending.
func HeatmapCells(records []model.ChampionRecord, clubs []string) []HeatmapCell {
	include := make(map[string]struct{}, len(clubs))
	for _, club := range clubs {
		include[club] = struct{}{}
	}

	type key struct {
		year int
		club string
	}
	counts := make(map[key]int)
	for _, rec := range records {
		if !rec.Year.Valid {
			continue
		}
		if _, ok := include[rec.Club]; !ok {
			continue
		}
		counts[key{year: rec.Year.Int, club: rec.Club}]++
	}

	out := make([]HeatmapCell, 0, len(counts))
	for k, titles := range counts {
		out = append(out, HeatmapCell{Year: k.year, Club: k.club, Titles: titles})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Club < out[j].Club
	})
	return out
}

func countClubTitles(records []model.ChampionRecord) []ClubTitles {
	type key struct {
		club   string
		league string
	}
	counts := make(map[key]int)
	for _, rec := range records {
		counts[key{club: rec.Club, league: rec.League}]++
	}
	out := make([]ClubTitles, 0, len(counts))
	for k, titles := range counts {
		out = append(out, ClubTitles{Club: k.club, League: k.league, Titles: titles})
	}
	return out
}
