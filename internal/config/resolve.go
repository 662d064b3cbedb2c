package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Overrides carries command-line values that take precedence over the
// environment and the config file.
type Overrides struct {
	ConfigPath string
	Questions  string
	Results    string
	UI         string
	WorkDir    string
	// Lookup replaces os.LookupEnv; when set the .env file is not read.
	Lookup func(string) (string, bool)
}

// Resolve builds the effective config: config file (or defaults when none
// is found), then .env and environment variables, then overrides.
func Resolve(overrides Overrides) (Config, error) {
	workDir := strings.TrimSpace(overrides.WorkDir)
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	cfg, err := loadOrDefault(overrides.ConfigPath, workDir)
	if err != nil {
		return Config{}, err
	}

	if overrides.Lookup == nil {
		if err := LoadEnvFile(workDir); err != nil {
			return Config{}, err
		}
	}
	ApplyEnv(&cfg, overrides.Lookup, workDir)

	if value := strings.TrimSpace(overrides.Questions); value != "" {
		cfg.Questions = resolvePath(workDir, value)
	}
	if value := strings.TrimSpace(overrides.Results); value != "" {
		cfg.Results = resolvePath(workDir, value)
	}
	if value := strings.TrimSpace(overrides.UI); value != "" {
		cfg.UI = strings.ToLower(value)
	}

	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadOrDefault(configPath, workDir string) (Config, error) {
	if strings.TrimSpace(configPath) != "" {
		path := resolvePath(workDir, configPath)
		abs, err := filepath.Abs(path)
		if err != nil {
			return Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		return Load(abs)
	}
	path, err := FindConfigPath(workDir)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return Default(workDir), nil
		}
		return Config{}, err
	}
	return Load(path)
}
