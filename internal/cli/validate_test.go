package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	isolateEnv(t)
	ws := newWorkspace(t, indoorBankJSON)
	ws.writeHistory(t, sampleHistory())

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", ws.configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	for _, want := range []string{"Config OK", "Question bank OK (1 questions)", "Results file OK"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output, got %q", want, out.String())
		}
	}
}

func TestValidateCommandMissingResultsIsOK(t *testing.T) {
	isolateEnv(t)
	ws := newWorkspace(t, indoorBankJSON)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", ws.configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out.String(), "Results file not found") {
		t.Fatalf("expected not-found notice, got %q", out.String())
	}
}

// TestValidateCommandFailure verifies validate command failure path.
func TestValidateCommandFailure(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".petquiz", "config.yml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("version: 2\ncategories: [cat, cat]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	for _, want := range []string{"Validation failed:", "unsupported version 2", "duplicate category"} {
		if !strings.Contains(err.String(), want) {
			t.Fatalf("expected %q in stderr, got %q", want, err.String())
		}
	}
}

func TestValidateCommandReportsBankIssues(t *testing.T) {
	isolateEnv(t)
	ws := newWorkspace(t, `{"questions":[{"question":"","answers":[{"answer":"yes","scores":{}},{"answer":"YES","scores":{}}]}]}`)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", ws.configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Question bank invalid") {
		t.Fatalf("expected bank failure, got %q", err.String())
	}
}

func TestValidateCommandReportsResultsSchemaIssues(t *testing.T) {
	isolateEnv(t)
	ws := newWorkspace(t, indoorBankJSON)
	if err := os.MkdirAll(filepath.Dir(ws.results), 0o755); err != nil {
		t.Fatalf("create results dir: %v", err)
	}
	body := `{"results":[{"name":"Ada","dateTime":"2024-03-01T12:00:00.000Z","scores":[{"category":"cat","percentage":"fifty"}]}]}`
	if err := os.WriteFile(ws.results, []byte(body), 0o644); err != nil {
		t.Fatalf("write results: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", ws.configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Results file invalid") {
		t.Fatalf("expected schema failure, got %q", err.String())
	}
}
