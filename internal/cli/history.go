package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"petquiz/internal/config"
	"petquiz/internal/report"
	"petquiz/internal/results"
)

func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		paths := addConfigFlags(flags, false)
		limit := flags.Int("limit", 10, "Number of most recent results to show (0 for all)")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if *limit < 0 {
			fmt.Fprintln(stderr, "--limit must be >= 0")
			return ExitUsage
		}

		_, records, code, ok := loadRecords(paths.overrides(), stdout, stderr)
		if !ok {
			return code
		}
		fmt.Fprint(stdout, report.HistoryTable(records, *limit, *noColor || !isTerminal(stdout)))
		return ExitOK
	}
}

// loadRecords resolves config and reads the results history. When the
// history is missing or empty it prints a notice and returns ok=false with
// ExitOK; other failures return ExitError.
func loadRecords(overrides config.Overrides, stdout, stderr io.Writer) (config.Config, []results.Record, int, bool) {
	cfg, err := config.Resolve(overrides)
	if err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return config.Config{}, nil, ExitError, false
	}
	records, err := results.NewStore(cfg.Results).Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(stdout, "No results recorded yet.")
			return cfg, nil, ExitOK, false
		}
		fmt.Fprintf(stderr, "Failed to load results: %v\n", err)
		return cfg, nil, ExitError, false
	}
	if len(records) == 0 {
		fmt.Fprintln(stdout, "No results recorded yet.")
		return cfg, nil, ExitOK, false
	}
	return cfg, records, ExitOK, true
}
