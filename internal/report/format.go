package report

import (
	"strings"

	"petquiz/internal/results"
	"petquiz/internal/score"
)

// formatTopCategory renders "cat (50.00%)" for a ranking.
func formatTopCategory(ranking score.Ranking) string {
	top, ok := ranking.Top()
	if !ok {
		return "-"
	}
	return top.Category + " (" + top.Percentage + "%)"
}

// formatRanking renders a ranking on a single line.
func formatRanking(ranking score.Ranking) string {
	parts := make([]string, 0, len(ranking))
	for _, entry := range ranking {
		parts = append(parts, entry.Category+" "+entry.Percentage+"%")
	}
	return strings.Join(parts, ", ")
}

// formatName falls back to a placeholder for blank names.
func formatName(record results.Record) string {
	if strings.TrimSpace(record.Name) == "" {
		return "(anonymous)"
	}
	return record.Name
}

// formatCompleted renders a record's time as "2006-01-02 15:04 UTC",
// falling back to the stored text when it does not parse.
func formatCompleted(record results.Record) string {
	when, err := record.Time()
	if err != nil {
		return record.DateTime
	}
	return when.UTC().Format("2006-01-02 15:04 UTC")
}

// lastN returns at most limit trailing records; limit <= 0 keeps all.
func lastN(records []results.Record, limit int) []results.Record {
	if limit <= 0 || len(records) <= limit {
		return records
	}
	return records[len(records)-limit:]
}
