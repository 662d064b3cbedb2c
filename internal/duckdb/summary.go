package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
)

// CategoryStat aggregates one category across the history.
type CategoryStat struct {
	Category string
	Average  float64
	Highest  float64
	Wins     int
}

// Summary describes the whole history.
type Summary struct {
	Respondents int
	First       string
	Last        string
	Categories  []CategoryStat
}

const categoryStatsQuery = `
SELECT
  category,
  AVG(percentage) AS average,
  MAX(percentage) AS highest,
  CAST(COUNT(*) FILTER (WHERE place = 1 AND percentage > 0) AS INTEGER) AS wins
FROM scores
GROUP BY category`

// Summarize computes per-category statistics. Categories are ordered by
// average descending; ties follow order, then name.
func Summarize(ctx context.Context, db *sql.DB, order []string) (Summary, error) {
	if db == nil {
		return Summary{}, errors.New("duckdb: db is nil")
	}
	var summary Summary
	var first, last sql.NullString
	row := db.QueryRowContext(ctx, "SELECT CAST(COUNT(*) AS INTEGER), MIN(completed_at), MAX(completed_at) FROM results")
	if err := row.Scan(&summary.Respondents, &first, &last); err != nil {
		return Summary{}, fmt.Errorf("duckdb: count results: %w", err)
	}
	summary.First = first.String
	summary.Last = last.String

	rows, err := db.QueryContext(ctx, categoryStatsQuery)
	if err != nil {
		return Summary{}, fmt.Errorf("duckdb: category stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var stat CategoryStat
		if err := rows.Scan(&stat.Category, &stat.Average, &stat.Highest, &stat.Wins); err != nil {
			return Summary{}, fmt.Errorf("duckdb: scan category stats: %w", err)
		}
		summary.Categories = append(summary.Categories, stat)
	}
	if err := rows.Err(); err != nil {
		return Summary{}, fmt.Errorf("duckdb: category stats: %w", err)
	}
	sortStats(summary.Categories, order)
	return summary, nil
}

func sortStats(stats []CategoryStat, order []string) {
	index := make(map[string]int, len(order))
	for i, category := range order {
		index[category] = i
	}
	position := func(category string) int {
		if i, ok := index[category]; ok {
			return i
		}
		return len(order)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Average != stats[j].Average {
			return stats[i].Average > stats[j].Average
		}
		pi, pj := position(stats[i].Category), position(stats[j].Category)
		if pi != pj {
			return pi < pj
		}
		return stats[i].Category < stats[j].Category
	})
}
