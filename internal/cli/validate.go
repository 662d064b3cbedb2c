package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"petquiz/internal/config"
	"petquiz/internal/question"
	"petquiz/internal/results"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		paths := addConfigFlags(flags, true)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := config.Resolve(paths.overrides())
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintln(stdout, "Config OK")

		failed := false
		bank, err := question.LoadBank(cfg.Questions)
		if err != nil {
			fmt.Fprintf(stderr, "Question bank invalid (%s):\n%s\n", cfg.Questions, err.Error())
			failed = true
		} else {
			fmt.Fprintf(stdout, "Question bank OK (%d questions)\n", len(bank.Questions))
		}

		data, err := os.ReadFile(cfg.Results)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(stdout, "Results file not found (%s); it will be created on first run\n", cfg.Results)
		case err != nil:
			fmt.Fprintf(stderr, "Results file unreadable: %v\n", err)
			failed = true
		default:
			issues, err := results.ValidateDocument(data)
			if err != nil {
				fmt.Fprintf(stderr, "Results file invalid (%s): %v\n", cfg.Results, err)
				failed = true
			} else if len(issues) > 0 {
				fmt.Fprintf(stderr, "Results file invalid (%s):\n", cfg.Results)
				for _, issue := range issues {
					fmt.Fprintf(stderr, "  - %s\n", issue)
				}
				failed = true
			} else {
				fmt.Fprintln(stdout, "Results file OK")
			}
		}

		if failed {
			return ExitError
		}
		return ExitOK
	}
}
