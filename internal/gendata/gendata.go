// Package gendata generates synthetic champions datasets for local
// development and load testing.
package gendata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// league couples a competition with its country and candidate winners.
// Club order matters: earlier clubs carry more weight, which yields the
// lopsided title distributions real leagues have.
type league struct {
	name    string
	country string
	clubs   []string
}

var leagues = []league{
	{"Premier League", "England", []string{
		"Manchester City", "Liverpool", "Manchester United", "Chelsea",
		"Arsenal", "Leicester City", "Tottenham Hotspur",
	}},
	{"La Liga", "Spain", []string{
		"Real Madrid", "Barcelona", "Atletico Madrid", "Valencia",
		"Sevilla", "Athletic Bilbao",
	}},
	{"Bundesliga", "Germany", []string{
		"Bayern Munich", "Borussia Dortmund", "RB Leipzig",
		"Bayer Leverkusen", "VfB Stuttgart",
	}},
	{"Serie A", "Italy", []string{
		"Juventus", "Inter Milan", "AC Milan", "Napoli", "Roma", "Lazio",
	}},
	{"Ligue 1", "France", []string{
		"Paris Saint-Germain", "Monaco", "Lille", "Marseille", "Lyon",
	}},
}

// Config controls dataset generation.
type Config struct {
	Output  string
	Seasons int
	EndYear int
	Seed    int64
}

// Run generates the dataset described by cfg and writes it to cfg.Output,
// or stdout when no output path is set.
func Run(cfg *Config) error {
	if cfg.Seasons < 1 {
		return fmt.Errorf("seasons must be at least 1, got %d", cfg.Seasons)
	}
	if cfg.EndYear == 0 {
		cfg.EndYear = time.Now().Year()
	}

	var out io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	return Write(out, cfg.Seasons, cfg.EndYear, cfg.Seed)
}

// Write emits header plus one row per league per season onto w.
func Write(w io.Writer, seasons, endYear int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"country", "year", "state", "region"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for year := endYear - seasons + 1; year <= endYear; year++ {
		for _, lg := range leagues {
			row := []string{
				lg.country,
				strconv.Itoa(year),
				pickWinner(rng, lg.clubs),
				lg.name,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// pickWinner draws a club with weight proportional to its position from
// the end of the list, so the first club is the most frequent champion.
func pickWinner(rng *rand.Rand, clubs []string) string {
	total := 0
	for i := range clubs {
		total += len(clubs) - i
	}
	pick := rng.Intn(total)
	for i := range clubs {
		pick -= len(clubs) - i
		if pick < 0 {
			return clubs[i]
		}
	}
	return clubs[len(clubs)-1]
}
