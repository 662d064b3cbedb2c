package config

import (
	"path/filepath"
	"strings"
)

// Normalize fills defaults, trims values, and anchors relative paths at
// BaseDir.
func Normalize(cfg *Config) {
	cfg.Questions = strings.TrimSpace(cfg.Questions)
	if cfg.Questions == "" {
		cfg.Questions = DefaultQuestionsFile
	}
	cfg.Results = strings.TrimSpace(cfg.Results)
	if cfg.Results == "" {
		cfg.Results = DefaultResultsFile
	}
	if cfg.Separator == "" {
		cfg.Separator = DefaultSeparator
	}
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = DefaultUIMode
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = append([]string(nil), DefaultCategories...)
	}
	for i := range cfg.Categories {
		cfg.Categories[i] = strings.TrimSpace(cfg.Categories[i])
	}
	cfg.Questions = resolvePath(cfg.BaseDir, cfg.Questions)
	cfg.Results = resolvePath(cfg.BaseDir, cfg.Results)
}

func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
