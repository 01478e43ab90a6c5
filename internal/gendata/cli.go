package gendata

import "os"

// ShowHelp prints usage information for the dataset generator.
func ShowHelp() {
	os.Stdout.WriteString(`Champions Dataset Generator
===========================

Generates a synthetic league winners CSV for the champions dashboard.

Usage:
  go run cmd/gen-dataset/main.go [options]

Options:
  -output string
        Output file path (default: stdout)
  -seasons int
        Number of seasons to generate, ending at -end-year (default 30)
  -end-year int
        Last season in the dataset (default: current year)
  -seed int
        Random seed for reproducible output (default 1)
  -help
        Show this help message

Examples:
  # Write 30 seasons to data/soccer_data.csv
  go run cmd/gen-dataset/main.go -output data/soccer_data.csv

  # A century of football, reproducibly
  go run cmd/gen-dataset/main.go -seasons 100 -seed 42 -output data/soccer_data.csv
`)
}
