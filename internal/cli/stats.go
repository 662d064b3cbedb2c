package cli

import (
	"context"
	"fmt"
	"io"

	"petquiz/internal/duckdb"
)

func runStats(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		paths := addConfigFlags(flags, false)
		dbPath := flags.String("db", "", "DuckDB database file to keep (default: in-memory)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, records, code, ok := loadRecords(paths.overrides(), stdout, stderr)
		if !ok {
			return code
		}

		ctx := context.Background()
		db, err := duckdb.Open(ctx, *dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open stats database: %v\n", err)
			return ExitError
		}
		defer db.Close()

		if err := duckdb.IngestResults(ctx, db, records); err != nil {
			fmt.Fprintf(stderr, "Failed to ingest results: %v\n", err)
			return ExitError
		}
		summary, err := duckdb.Summarize(ctx, db, cfg.Categories)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to summarize results: %v\n", err)
			return ExitError
		}
		writeSummary(stdout, summary)
		return ExitOK
	}
}

func writeSummary(w io.Writer, summary duckdb.Summary) {
	fmt.Fprintf(w, "Respondents: %d\n", summary.Respondents)
	if summary.First != "" {
		fmt.Fprintf(w, "First: %s\n", summary.First)
		fmt.Fprintf(w, "Last:  %s\n", summary.Last)
	}
	width := len("Category")
	for _, stat := range summary.Categories {
		width = max(width, len(stat.Category))
	}
	fmt.Fprintf(w, "\n%-*s %8s %8s %5s\n", width, "Category", "Average", "Highest", "Wins")
	for _, stat := range summary.Categories {
		fmt.Fprintf(w, "%-*s %7.2f%% %7.2f%% %5d\n", width, stat.Category, stat.Average, stat.Highest, stat.Wins)
	}
}
