package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func main() {
	outPath := flag.String("out", "", "output results file path")
	count := flag.Int("respondents", 50, "number of records to generate")
	seed := flag.Int64("seed", 1, "random seed for answers")
	flag.Parse()
	if *outPath == "" || *count < 0 {
		fmt.Fprintln(os.Stderr, "usage: fixture --out <results.json> [--respondents n] [--seed n]")
		os.Exit(2)
	}
	records, err := generateHistory(fixtureConfig{
		Respondents: *count,
		Seed:        *seed,
		Start:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
	if err := removeIfExists(*outPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeHistory(*outPath, records); err != nil {
		fmt.Fprintf(os.Stderr, "write fixture: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d records to %s\n", len(records), *outPath)
}
