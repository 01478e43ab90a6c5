package main

import (
	"flag"
	"os"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/gendata"
)

// Default configuration constants.
const (
	defaultSeasons = 30
	defaultSeed    = 1
)

func main() {
	var (
		output  = flag.String("output", "", "Output file path (default: stdout)")
		seasons = flag.Int("seasons", defaultSeasons, "Number of seasons to generate")
		endYear = flag.Int("end-year", 0, "Last season in the dataset (default: current year)")
		seed    = flag.Int64("seed", defaultSeed, "Random seed for reproducible output")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		gendata.ShowHelp()
		return
	}

	cfg := &gendata.Config{
		Output:  *output,
		Seasons: *seasons,
		EndYear: *endYear,
		Seed:    *seed,
	}

	if err := gendata.Run(cfg); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
