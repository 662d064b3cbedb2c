package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"

	"petquiz/internal/results"
)

// IngestResults replaces the stored history with records, keeping their
// file order as position.
func IngestResults(ctx context.Context, db *sql.DB, records []results.Record) error {
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("duckdb: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range []string{"DELETE FROM scores", "DELETE FROM results"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("duckdb: reset: %w", err)
		}
	}

	insertResult, err := tx.PrepareContext(ctx, "INSERT INTO results (seq, id, name, completed_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("duckdb: prepare results: %w", err)
	}
	defer insertResult.Close()
	insertScore, err := tx.PrepareContext(ctx, "INSERT INTO scores (seq, place, category, percentage) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("duckdb: prepare scores: %w", err)
	}
	defer insertScore.Close()

	for position, record := range records {
		if _, err := insertResult.ExecContext(ctx, position, nullableString(record.ID), record.Name, record.DateTime); err != nil {
			return fmt.Errorf("duckdb: insert result %d: %w", position, err)
		}
		for rank, entry := range record.Scores {
			pct, err := strconv.ParseFloat(entry.Percentage, 64)
			if err != nil {
				return fmt.Errorf("duckdb: result %d: percentage %q for %s: %w", position, entry.Percentage, entry.Category, err)
			}
			if math.IsNaN(pct) || math.IsInf(pct, 0) {
				pct = 0
			}
			if _, err := insertScore.ExecContext(ctx, position, rank+1, entry.Category, pct); err != nil {
				return fmt.Errorf("duckdb: insert score %d/%s: %w", position, entry.Category, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("duckdb: commit: %w", err)
	}
	return nil
}

// nullableString converts an empty string into a SQL NULL.
func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
