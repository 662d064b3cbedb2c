package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override config file values.
const (
	EnvQuestions = "PETQUIZ_QUESTIONS"
	EnvResults   = "PETQUIZ_RESULTS"
	EnvUI        = "PETQUIZ_UI"
	EnvSeparator = "PETQUIZ_SEPARATOR"
)

// LoadEnvFile loads KEY=value pairs from a .env file in dir into the
// process environment. Variables already set win; a missing file is not an
// error.
func LoadEnvFile(dir string) error {
	path := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", EnvFileName, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", EnvFileName, err)
	}
	return nil
}

// ApplyEnv overrides cfg fields from the environment. Relative paths from
// the environment resolve against workDir, like command-line paths.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool), workDir string) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if value, ok := lookupNonEmpty(lookup, EnvQuestions); ok {
		cfg.Questions = resolvePath(workDir, value)
	}
	if value, ok := lookupNonEmpty(lookup, EnvResults); ok {
		cfg.Results = resolvePath(workDir, value)
	}
	if value, ok := lookupNonEmpty(lookup, EnvUI); ok {
		cfg.UI = strings.ToLower(value)
	}
	if value, ok := lookup(EnvSeparator); ok && value != "" {
		cfg.Separator = value
	}
}

func lookupNonEmpty(lookup func(string) (string, bool), key string) (string, bool) {
	value, ok := lookup(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
