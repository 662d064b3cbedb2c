package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"petquiz/internal/results"
	"petquiz/internal/score"
	"petquiz/internal/testutil"
)

const indoorBankJSON = `{
  "questions": [
    {
      "question": "Do you prefer staying indoor or going outdoor?",
      "answers": [
        { "answer": "indoor", "scores": { "cat": 3, "dog": 0, "rabbit": 2, "fish": 1 } },
        { "answer": "outdoor", "scores": { "cat": 0, "dog": 3, "rabbit": 1, "fish": 0 } }
      ]
    }
  ]
}
`

// workspace is a temporary directory holding a petquiz config.
type workspace struct {
	dir        string
	configPath string
	questions  string
	results    string
}

// newWorkspace writes .petquiz/config.yml and the given question bank.
func newWorkspace(t *testing.T, bank string) workspace {
	t.Helper()
	dir := t.TempDir()
	ws := workspace{
		dir:        dir,
		configPath: filepath.Join(dir, ".petquiz", "config.yml"),
		questions:  filepath.Join(dir, "questions.json"),
		results:    filepath.Join(dir, "data", "results.json"),
	}
	config := "version: 1\nquestions: questions.json\nresults: data/results.json\nui: plain\n"
	if err := os.MkdirAll(filepath.Dir(ws.configPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(ws.configPath, []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if bank != "" {
		if err := os.WriteFile(ws.questions, []byte(bank), 0o644); err != nil {
			t.Fatalf("write questions: %v", err)
		}
	}
	return ws
}

// writeHistory stores records in the workspace results file.
func (ws workspace) writeHistory(t *testing.T, records []results.Record) {
	t.Helper()
	if err := results.NewStore(ws.results).Save(records); err != nil {
		t.Fatalf("save history: %v", err)
	}
}

// readHistory loads the workspace results file.
func (ws workspace) readHistory(t *testing.T) []results.Record {
	t.Helper()
	records, err := results.NewStore(ws.results).Load()
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	return records
}

func sampleHistory() []results.Record {
	return []results.Record{
		{
			ID:       "rec-1",
			Name:     "Ada",
			DateTime: "2024-03-01T12:00:00.000Z",
			Scores: score.Ranking{
				{Category: "cat", Percentage: "50.00"},
				{Category: "rabbit", Percentage: "33.33"},
				{Category: "fish", Percentage: "16.67"},
				{Category: "dog", Percentage: "0.00"},
			},
		},
		{
			ID:       "rec-2",
			Name:     "Bo",
			DateTime: "2024-03-02T12:00:00.000Z",
			Scores: score.Ranking{
				{Category: "dog", Percentage: "75.00"},
				{Category: "rabbit", Percentage: "25.00"},
				{Category: "cat", Percentage: "0.00"},
				{Category: "fish", Percentage: "0.00"},
			},
		},
	}
}

// isolateEnv hides PETQUIZ_* variables and .env files from commands.
func isolateEnv(t *testing.T) {
	t.Helper()
	original := envLookup
	envLookup = func(string) (string, bool) { return "", false }
	t.Cleanup(func() { envLookup = original })
}

// withTakeInput feeds stdin lines to the take command.
func withTakeInput(t *testing.T, lines ...string) {
	t.Helper()
	original := takeInput
	takeInput = testutil.ScriptedInput(lines...)
	t.Cleanup(func() { takeInput = original })
}

// withInitInput feeds stdin lines to the init command.
func withInitInput(t *testing.T, lines ...string) {
	t.Helper()
	original := initInput
	initInput = testutil.ScriptedInput(lines...)
	t.Cleanup(func() { initInput = original })
}

// forceTTY overrides TTY detection for stdout and stdin.
func forceTTY(t *testing.T, stdout, stdin bool) {
	t.Helper()
	origOut, origIn := isTerminal, isInputTerminal
	isTerminal = func(io.Writer) bool { return stdout }
	isInputTerminal = func(io.Reader) bool { return stdin }
	t.Cleanup(func() {
		isTerminal = origOut
		isInputTerminal = origIn
	})
}
