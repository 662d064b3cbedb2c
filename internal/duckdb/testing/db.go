package duckdbtesting

import (
	"database/sql"
	"testing"
	"time"

	"petquiz/internal/duckdb"
	"petquiz/internal/testutil"
)

const (
	defaultTimeout = 5 * time.Second
)

// Open opens an in-memory DuckDB database with the schema applied and
// closes it when the test ends.
func Open(t testing.TB) *sql.DB {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	db, err := duckdb.Open(ctx, "")
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
