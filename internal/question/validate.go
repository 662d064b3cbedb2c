package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeBank trims whitespace and validates a question bank.
//
// An empty bank is valid. Category weights are not cross-checked; a missing
// category simply scores zero.
func NormalizeBank(bank Bank) (Bank, error) {
	collector := &issueCollector{}
	for i, question := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		question.Text = strings.TrimSpace(question.Text)
		if question.Text == "" {
			collector.add(prefix+".question", "is required")
		}

		if len(question.Answers) == 0 {
			collector.add(prefix+".answers", "must include at least one entry")
		}
		seen := map[string]int{}
		for answerIndex, answer := range question.Answers {
			field := fmt.Sprintf("%s.answers[%d].answer", prefix, answerIndex)
			answer.Label = strings.TrimSpace(answer.Label)
			if answer.Label == "" {
				collector.add(field, "is required")
			} else {
				key := NormalizeAnswerText(answer.Label)
				if first, exists := seen[key]; exists {
					collector.add(field, fmt.Sprintf("duplicate answer %q (matches answers[%d])", answer.Label, first))
				} else {
					seen[key] = answerIndex
				}
			}
			question.Answers[answerIndex] = answer
		}
		bank.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return bank, nil
}
