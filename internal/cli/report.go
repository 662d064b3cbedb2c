package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"petquiz/internal/report"
)

var renderReportHTML = report.RenderHTML

func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		paths := addConfigFlags(flags, false)
		outputPath := flags.String("output", "", "Report output path (default: results.html next to the results file)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, records, code, ok := loadRecords(paths.overrides(), stdout, stderr)
		if !ok && code != ExitOK {
			return code
		}

		html, err := renderReportHTML(context.Background(), records, cfg.Categories)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to render report: %v\n", err)
			return ExitError
		}

		target := *outputPath
		if target == "" {
			target = filepath.Join(filepath.Dir(cfg.Results), "results.html")
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			fmt.Fprintf(stderr, "Failed to create report dir: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(target, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report written to %s\n", target)
		return ExitOK
	}
}
