package config

import (
	"fmt"
	"strings"
)

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if strings.TrimSpace(cfg.Questions) == "" {
		collector.add("questions", "is required")
	}
	if strings.TrimSpace(cfg.Results) == "" {
		collector.add("results", "is required")
	}
	if cfg.Questions != "" && cfg.Questions == cfg.Results {
		collector.add("results", "must differ from questions")
	}

	validateCategories(cfg.Categories, collector.add)

	switch cfg.UI {
	case "auto", "live", "plain":
	default:
		collector.add("ui", fmt.Sprintf("invalid ui mode %q (expected auto|live|plain)", cfg.UI))
	}

	return collector.result()
}

func validateCategories(categories []string, add issueAdder) {
	if len(categories) == 0 {
		add("categories", "must include at least one entry")
		return
	}
	seen := map[string]struct{}{}
	for i, category := range categories {
		field := fmt.Sprintf("categories[%d]", i)
		if category == "" {
			add(field, "is required")
			continue
		}
		if _, exists := seen[category]; exists {
			add(field, fmt.Sprintf("duplicate category %q", category))
			continue
		}
		seen[category] = struct{}{}
	}
}
