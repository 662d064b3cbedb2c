package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// addGitignoreEntry appends the results file to baseDir/.gitignore unless
// an identical line is already present.
func addGitignoreEntry(baseDir, resultsFile string) (bool, error) {
	entry, err := normalizeGitignorePath(baseDir, resultsFile)
	if err != nil {
		return false, err
	}

	gitignorePath := filepath.Join(baseDir, ".gitignore")
	var existing []byte
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = data
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("read .gitignore: %w", err)
	}

	for _, line := range strings.Split(string(existing), "\n") {
		if strings.TrimSpace(line) == entry {
			return false, nil
		}
	}

	updated := string(existing)
	if len(updated) > 0 && !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}
	updated += entry + "\n"
	if err := os.WriteFile(gitignorePath, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("write .gitignore: %w", err)
	}
	return true, nil
}

// normalizeGitignorePath returns resultsFile relative to baseDir in slash
// form, anchored with a leading slash.
func normalizeGitignorePath(baseDir, resultsFile string) (string, error) {
	if strings.TrimSpace(resultsFile) == "" {
		return "", fmt.Errorf("results file is required")
	}
	clean := filepath.Clean(resultsFile)
	if filepath.IsAbs(clean) {
		rel, err := filepath.Rel(baseDir, clean)
		if err != nil {
			return "", fmt.Errorf("resolve results file: %w", err)
		}
		clean = rel
	}
	if clean == "." || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("results file %q is outside %s", resultsFile, baseDir)
	}
	return "/" + filepath.ToSlash(clean), nil
}
