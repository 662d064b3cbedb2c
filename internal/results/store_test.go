package results

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"petquiz/internal/score"
)

func sampleRecord(name string) Record {
	return Record{
		ID:       "b7c1a7c2-0000-4000-8000-000000000001",
		Name:     name,
		DateTime: FormatTime(time.Date(2024, 3, 1, 12, 30, 0, 250*int(time.Millisecond), time.UTC)),
		Scores: score.Ranking{
			{Category: "cat", Percentage: "50.00"},
			{Category: "rabbit", Percentage: "33.33"},
			{Category: "fish", Percentage: "16.67"},
			{Category: "dog", Percentage: "0.00"},
		},
	}
}

// TestStoreRoundTrip verifies save then load preserves rank order and strings.
func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "results.json"))
	records := []Record{sampleRecord("Ada"), sampleRecord("Grace")}
	records[1].Scores = score.Ranking{
		{Category: "dog", Percentage: "100.00"},
		{Category: "cat", Percentage: "0.00"},
		{Category: "rabbit", Percentage: "0.00"},
		{Category: "fish", Percentage: "0.00"},
	}
	if err := store.Save(records); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(loaded))
	}
	for i := range records {
		if loaded[i].Name != records[i].Name || loaded[i].DateTime != records[i].DateTime || loaded[i].ID != records[i].ID {
			t.Fatalf("record %d mismatch: %+v", i, loaded[i])
		}
		if len(loaded[i].Scores) != len(records[i].Scores) {
			t.Fatalf("record %d scores mismatch: %+v", i, loaded[i].Scores)
		}
		for j := range records[i].Scores {
			if loaded[i].Scores[j] != records[i].Scores[j] {
				t.Fatalf("record %d rank %d: expected %+v, got %+v", i, j, records[i].Scores[j], loaded[i].Scores[j])
			}
		}
	}
}

// TestStoreSaveOverwrites verifies save rewrites the whole file.
func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "results.json"))
	if err := store.Save([]Record{sampleRecord("one"), sampleRecord("two")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save([]Record{sampleRecord("three")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name != "three" {
		t.Fatalf("expected only the latest record set, got %+v", loaded)
	}
}

// TestStoreSaveEmptyWritesArray verifies an empty history is written as [].
func TestStoreSaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	if err := NewStore(path).Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `"results": []`) {
		t.Fatalf("expected empty array, got %s", data)
	}
}

// TestStoreLoadErrors verifies missing and corrupt files surface errors.
func TestStoreLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := NewStore(filepath.Join(dir, "missing.json")).Load()
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte(`{"results": [`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewStore(corrupt).Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

// TestStoreLoadLegacyDocument verifies files written by the original program load.
func TestStoreLoadLegacyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	legacy := `{"results":[{"name":"Lin","dateTime":"2023-05-01T10:00:00.000Z","scores":{"dog":"60.00","cat":"40.00","rabbit":"0.00","fish":"0.00"}}]}`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 record, got %d", len(loaded))
	}
	top, _ := loaded[0].Scores.Top()
	if top.Category != "dog" || top.Percentage != "60.00" {
		t.Fatalf("expected dog on top, got %+v", top)
	}
	when, err := loaded[0].Time()
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	if when.Year() != 2023 {
		t.Fatalf("unexpected time: %v", when)
	}
}

// TestFormatTime verifies ISO-8601 UTC output with milliseconds.
func TestFormatTime(t *testing.T) {
	local := time.FixedZone("UTC+2", 2*60*60)
	got := FormatTime(time.Date(2024, 1, 2, 5, 4, 3, 9*int(time.Millisecond), local))
	if got != "2024-01-02T03:04:03.009Z" {
		t.Fatalf("unexpected time format: %s", got)
	}
}
