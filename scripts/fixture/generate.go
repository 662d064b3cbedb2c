package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"petquiz/internal/config"
	"petquiz/internal/question"
	"petquiz/internal/results"
	"petquiz/internal/score"
)

// fixtureConfig controls a generated results history.
type fixtureConfig struct {
	Respondents int
	Seed        int64
	Start       time.Time
}

// generateHistory answers the sample bank at random for each respondent.
func generateHistory(cfg fixtureConfig) ([]results.Record, error) {
	bank, err := question.ParseBank([]byte(config.SampleQuestions), "sample.json")
	if err != nil {
		return nil, fmt.Errorf("parse sample bank: %w", err)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	records := make([]results.Record, 0, cfg.Respondents)
	for i := 0; i < cfg.Respondents; i++ {
		totals := score.NewTotals(config.DefaultCategories)
		for _, q := range bank.Questions {
			totals = score.Accumulate(totals, q.Answers[rng.Intn(len(q.Answers))])
		}
		records = append(records, results.Record{
			ID:       deterministicID("respondent", i),
			Name:     fmt.Sprintf("respondent-%03d", i+1),
			DateTime: results.FormatTime(cfg.Start.Add(time.Duration(i) * time.Minute)),
			Scores:   score.Normalize(totals),
		})
	}
	return records, nil
}

// writeHistory saves records as a results document.
func writeHistory(path string, records []results.Record) error {
	return results.NewStore(path).Save(records)
}

// removeIfExists deletes an existing fixture file so we always start fresh.
func removeIfExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove existing fixture: %w", err)
		}
		return nil
	}
	if os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("stat fixture: %w", err)
}

// deterministicID generates a repeatable UUID for fixture records.
func deterministicID(prefix string, index int) string {
	return uuid.NewSHA1(fixtureNamespace, []byte(fmt.Sprintf("%s-%d", prefix, index))).String()
}

// fixtureNamespace ensures stable UUIDs across fixture runs.
var fixtureNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
