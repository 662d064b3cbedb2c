package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultConfigTemplate = `version: 1
# Paths are relative to the directory that holds .petquiz/.
questions: %q
results: %q
# Closed category set; order breaks ties between equal percentages.
categories: [cat, dog, rabbit, fish]
separator: "/"
# auto | live | plain
ui: auto
`

// SampleQuestions is the pet-affinity question bank written by Scaffold.
const SampleQuestions = `{
  "questions": [
    {
      "question": "Do you prefer staying indoor or going outdoor?",
      "answers": [
        { "answer": "indoor", "scores": { "cat": 3, "dog": 0, "rabbit": 2, "fish": 1 } },
        { "answer": "outdoor", "scores": { "cat": 0, "dog": 3, "rabbit": 1, "fish": 0 } }
      ]
    },
    {
      "question": "How much time can you spend with a pet each day?",
      "answers": [
        { "answer": "little", "scores": { "cat": 2, "dog": 0, "rabbit": 1, "fish": 3 } },
        { "answer": "some", "scores": { "cat": 2, "dog": 1, "rabbit": 2, "fish": 1 } },
        { "answer": "lots", "scores": { "cat": 1, "dog": 3, "rabbit": 2, "fish": 0 } }
      ]
    },
    {
      "question": "Do you want a pet you can cuddle?",
      "answers": [
        { "answer": "yes", "scores": { "cat": 2, "dog": 3, "rabbit": 3, "fish": 0 } },
        { "answer": "no", "scores": { "cat": 1, "dog": 0, "rabbit": 0, "fish": 3 } }
      ]
    },
    {
      "question": "How big is your home?",
      "answers": [
        { "answer": "small", "scores": { "cat": 2, "dog": 0, "rabbit": 1, "fish": 3 } },
        { "answer": "medium", "scores": { "cat": 2, "dog": 1, "rabbit": 2, "fish": 1 } },
        { "answer": "large", "scores": { "cat": 1, "dog": 3, "rabbit": 2, "fish": 1 } }
      ]
    },
    {
      "question": "Quiet evenings or noisy fun?",
      "answers": [
        { "answer": "quiet", "scores": { "cat": 3, "dog": 0, "rabbit": 2, "fish": 3 } },
        { "answer": "noisy", "scores": { "cat": 0, "dog": 3, "rabbit": 1, "fish": 0 } }
      ]
    }
  ]
}
`

// ScaffoldResult lists the files written by Scaffold.
type ScaffoldResult struct {
	ConfigPath    string
	QuestionsPath string
}

// Scaffold writes a config file and, when absent, a sample question bank
// next to the config directory. resultsFile is stored as given.
func Scaffold(configPath, resultsFile string) (ScaffoldResult, error) {
	if configPath == "" {
		return ScaffoldResult{}, fmt.Errorf("config path is required")
	}
	if err := ensureAbsent(configPath, "config"); err != nil {
		return ScaffoldResult{}, err
	}
	resultsFile = strings.TrimSpace(resultsFile)
	if resultsFile == "" {
		resultsFile = DefaultResultsFile
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return ScaffoldResult{}, fmt.Errorf("create config dir: %w", err)
	}
	content := fmt.Sprintf(defaultConfigTemplate, DefaultQuestionsFile, resultsFile)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return ScaffoldResult{}, fmt.Errorf("write config file: %w", err)
	}

	result := ScaffoldResult{ConfigPath: configPath}
	questionsPath := filepath.Join(BaseDirFromConfigPath(configPath), DefaultQuestionsFile)
	if _, err := os.Stat(questionsPath); os.IsNotExist(err) {
		if err := os.WriteFile(questionsPath, []byte(SampleQuestions), 0o644); err != nil {
			return ScaffoldResult{}, fmt.Errorf("write question bank: %w", err)
		}
		result.QuestionsPath = questionsPath
	} else if err != nil {
		return ScaffoldResult{}, fmt.Errorf("stat question bank: %w", err)
	}
	return result, nil
}

func ensureAbsent(path, label string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s path %q is a directory", label, path)
		}
		return fmt.Errorf("%s file already exists at %q", label, path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s file: %w", label, err)
	}
	return nil
}
