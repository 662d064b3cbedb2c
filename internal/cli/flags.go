package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"petquiz/internal/config"
)

// configFlags are the config overrides shared by most commands.
type configFlags struct {
	configPath *string
	questions  *string
	results    *string
}

// addConfigFlags registers --config and, when requested, path overrides.
func addConfigFlags(fs *flag.FlagSet, withQuestions bool) configFlags {
	flags := configFlags{
		configPath: fs.String("config", "", "Path to config file (default: search for .petquiz/config.yml)"),
		results:    fs.String("results", "", "Override results file"),
	}
	if withQuestions {
		flags.questions = fs.String("questions", "", "Override question bank file")
	}
	return flags
}

// overrides converts parsed flags into config overrides.
func (f configFlags) overrides() config.Overrides {
	overrides := config.Overrides{
		ConfigPath: *f.configPath,
		Results:    *f.results,
		Lookup:     envLookup,
	}
	if f.questions != nil {
		overrides.Questions = *f.questions
	}
	return overrides
}

// envLookup allows tests to replace the process environment.
var envLookup func(string) (string, bool)

// parseFlags parses args, handling help and stray positional arguments.
// ok is false when the caller should return code.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// newFlagSet returns a flag set that reports errors to stderr.
func newFlagSet(cmd *Command, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}
