package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	"petquiz/internal/config"
	"petquiz/internal/prompt"
	"petquiz/internal/question"
	"petquiz/internal/report"
	"petquiz/internal/results"
	"petquiz/internal/session"
	"petquiz/internal/ui/live"
)

// takeInput is the answer source for take; tests replace it.
var takeInput io.Reader = os.Stdin

func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		fs := newFlagSet(cmd, stderr)
		flags := addConfigFlags(fs, true)
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain")
		verbose := fs.Bool("verbose", false, "Log session progress to stderr")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		overrides := flags.overrides()
		overrides.UI = *uiMode
		cfg, err := config.Resolve(overrides)
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(cfg.UI, *verbose, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.useLive && !isInputTerminal(takeInput) {
			decision = uiModeDecision{
				warning: liveWarning(cfg.UI, "stdin is not a TTY"),
			}
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger := log.New(stderr, "", 0)
		progress := live.NewTracker(*noColor)
		runner := &session.Runner{
			LoadBank:   func() (question.Bank, error) { return question.LoadBank(cfg.Questions) },
			Store:      results.NewStore(cfg.Results),
			Prompter:   newPrompter(decision.useLive, *noColor, stdout, progress),
			Categories: cfg.Categories,
			Separator:  cfg.Separator,
			Out:        stdout,
			Logger:     logger,
		}
		switch {
		case *verbose:
			runner.Observer = verboseObserver(logger)
		case decision.useLive:
			runner.Observer = progress.Observe
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		outcome, err := runner.Run(ctx)
		if err != nil {
			return reportTakeError(stderr, err)
		}

		if *verbose {
			logger.Printf("answered %d questions, overall score %s", outcome.Answered, formatScore(outcome.Totals.Overall()))
			for _, category := range outcome.Totals.Categories() {
				logger.Printf("  %s: %s", category, formatScore(outcome.Totals.Get(category)))
			}
		}
		fmt.Fprintln(stdout, "Questionnaire completed successfully!")
		fmt.Fprintln(stdout, "Results:")
		report.WriteRanking(stdout, outcome.Record.Scores, *noColor || !decision.useLive)
		return ExitOK
	}
}

func newPrompter(useLive, noColor bool, stdout io.Writer, progress *live.Tracker) prompt.Prompter {
	if useLive {
		return prompt.NewLive(takeInput, stdout, prompt.LiveOptions{NoColor: noColor, Header: progress.Header})
	}
	return prompt.NewPlain(takeInput, stdout)
}

func liveWarning(mode, reason string) string {
	if mode == "live" {
		return fmt.Sprintf("Live UI requested but %s; falling back to plain prompts.", reason)
	}
	return ""
}

func verboseObserver(logger *log.Logger) session.Observer {
	return func(transition session.Transition) {
		if transition.State == session.StateAskingQuestions {
			logger.Printf("[%s] question %d/%d", transition.State, transition.Question+1, transition.Total)
			return
		}
		logger.Printf("[%s]", transition.State)
	}
}

// formatScore prints raw weights without trailing zeros.
func formatScore(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func reportTakeError(stderr io.Writer, err error) int {
	var validationErr *question.ValidationError
	switch {
	case errors.As(err, &validationErr):
		fmt.Fprintln(stderr, "Invalid question bank:")
		for _, issue := range validationErr.Issues {
			fmt.Fprintf(stderr, "  - %s: %s\n", issue.Field, issue.Message)
		}
	case errors.Is(err, session.ErrAborted):
		fmt.Fprintln(stderr, "Questionnaire aborted; nothing was saved.")
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitError
}
