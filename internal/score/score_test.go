package score

import (
	"encoding/json"
	"strconv"
	"testing"

	"petquiz/internal/question"
)

var petCategories = []string{"cat", "dog", "rabbit", "fish"}

func answer(scores map[string]float64) question.Answer {
	return question.Answer{Label: "a", Scores: scores}
}

func rankingCategories(r Ranking) []string {
	out := make([]string, 0, len(r))
	for _, entry := range r {
		out = append(out, entry.Category)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestIndoorScenario verifies the single-question pet scenario end to end.
func TestIndoorScenario(t *testing.T) {
	totals := Accumulate(NewTotals(petCategories), answer(map[string]float64{"cat": 3, "dog": 0, "rabbit": 2, "fish": 1}))
	if totals.Overall() != 6 {
		t.Fatalf("expected overall 6, got %v", totals.Overall())
	}
	ranking := Normalize(totals)
	want := Ranking{
		{Category: "cat", Percentage: "50.00"},
		{Category: "rabbit", Percentage: "33.33"},
		{Category: "fish", Percentage: "16.67"},
		{Category: "dog", Percentage: "0.00"},
	}
	if len(ranking) != len(want) {
		t.Fatalf("unexpected ranking: %+v", ranking)
	}
	for i := range want {
		if ranking[i] != want[i] {
			t.Fatalf("rank %d: expected %+v, got %+v", i, want[i], ranking[i])
		}
	}
	top, ok := ranking.Top()
	if !ok || top.Category != "cat" {
		t.Fatalf("expected cat on top, got %+v", top)
	}
}

// TestNormalizeZeroOverall verifies zero totals report 0.00 in set order.
func TestNormalizeZeroOverall(t *testing.T) {
	ranking := Normalize(NewTotals(petCategories))
	if !equalStrings(rankingCategories(ranking), petCategories) {
		t.Fatalf("expected enumeration order, got %v", rankingCategories(ranking))
	}
	for _, entry := range ranking {
		if entry.Percentage != "0.00" {
			t.Fatalf("expected 0.00 for %s, got %s", entry.Category, entry.Percentage)
		}
	}
}

// TestNormalizeCancellingWeights verifies weights summing to zero do not divide by zero.
func TestNormalizeCancellingWeights(t *testing.T) {
	totals := Accumulate(NewTotals(petCategories), answer(map[string]float64{"cat": 2, "dog": -2}))
	for _, entry := range Normalize(totals) {
		if entry.Percentage != "0.00" {
			t.Fatalf("expected 0.00 for %s, got %s", entry.Category, entry.Percentage)
		}
	}
}

// TestNormalizeStableTieBreak verifies equal percentages keep set order.
func TestNormalizeStableTieBreak(t *testing.T) {
	totals := Accumulate(NewTotals(petCategories), answer(map[string]float64{"fish": 2, "dog": 2, "cat": 1, "rabbit": 1}))
	want := []string{"dog", "fish", "cat", "rabbit"}
	for run := 0; run < 20; run++ {
		if got := rankingCategories(Normalize(totals)); !equalStrings(got, want) {
			t.Fatalf("run %d: expected %v, got %v", run, want, got)
		}
	}
}

// TestNormalizeSumsToHundred verifies percentages sum to 100 within rounding.
func TestNormalizeSumsToHundred(t *testing.T) {
	cases := []map[string]float64{
		{"cat": 1, "dog": 1, "rabbit": 1},
		{"cat": 7, "dog": 3, "rabbit": 11, "fish": 13},
		{"cat": 0.5, "fish": 2.25},
		{"dog": 1},
	}
	for _, weights := range cases {
		ranking := Normalize(Accumulate(NewTotals(petCategories), answer(weights)))
		var sum float64
		for _, entry := range ranking {
			value, err := strconv.ParseFloat(entry.Percentage, 64)
			if err != nil {
				t.Fatalf("parse %q: %v", entry.Percentage, err)
			}
			sum += value
		}
		if sum < 99.98 || sum > 100.02 {
			t.Fatalf("weights %v: expected sum near 100, got %.4f", weights, sum)
		}
	}
}

// TestAccumulateIsPure verifies the input totals are not modified.
func TestAccumulateIsPure(t *testing.T) {
	base := NewTotals(petCategories)
	first := Accumulate(base, answer(map[string]float64{"cat": 3, "unknown": 9}))
	second := Accumulate(first, answer(map[string]float64{"cat": 1, "dog": 2}))
	if base.Get("cat") != 0 {
		t.Fatalf("expected base untouched, got %v", base.Get("cat"))
	}
	if first.Get("cat") != 3 || second.Get("cat") != 4 || second.Get("dog") != 2 {
		t.Fatalf("unexpected totals: first=%v second=%v/%v", first.Get("cat"), second.Get("cat"), second.Get("dog"))
	}
	if second.Overall() != 6 {
		t.Fatalf("expected unknown category to be ignored, overall=%v", second.Overall())
	}
}

// TestNewTotalsDropsDuplicateCategories verifies the set stays closed and ordered.
func TestNewTotalsDropsDuplicateCategories(t *testing.T) {
	totals := NewTotals([]string{"cat", "dog", "cat"})
	if !equalStrings(totals.Categories(), []string{"cat", "dog"}) {
		t.Fatalf("unexpected categories: %v", totals.Categories())
	}
}

// TestRankingJSON verifies the pair-list form and legacy object form decode in order.
func TestRankingJSON(t *testing.T) {
	ranking := Ranking{{Category: "cat", Percentage: "50.00"}, {Category: "dog", Percentage: "50.00"}}
	data, err := json.Marshal(ranking)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `[{"category":"cat","percentage":"50.00"},{"category":"dog","percentage":"50.00"}]` {
		t.Fatalf("unexpected json: %s", data)
	}

	var legacy Ranking
	if err := json.Unmarshal([]byte(`{"rabbit":"40.00","cat":"35.00","fish":25,"dog":"0.00"}`), &legacy); err != nil {
		t.Fatalf("unmarshal legacy: %v", err)
	}
	if !equalStrings(rankingCategories(legacy), []string{"rabbit", "cat", "fish", "dog"}) {
		t.Fatalf("expected document order, got %v", rankingCategories(legacy))
	}
	if pct, _ := legacy.Lookup("fish"); pct != "25.00" {
		t.Fatalf("expected numeric legacy value formatted, got %q", pct)
	}

	var empty Ranking
	if err := json.Unmarshal([]byte(`{"cat":"NaN","dog":"NaN","rabbit":"Infinity","fish":"NaN"}`), &empty); err != nil {
		t.Fatalf("unmarshal legacy empty run: %v", err)
	}
	for _, entry := range empty {
		if entry.Percentage != "0.00" {
			t.Fatalf("expected non-finite legacy values as 0.00, got %+v", empty)
		}
	}
	if !equalStrings(rankingCategories(empty), petCategories) {
		t.Fatalf("expected document order, got %v", rankingCategories(empty))
	}

	var bad Ranking
	if err := json.Unmarshal([]byte(`"nope"`), &bad); err == nil {
		t.Fatalf("expected error for scalar scores")
	}
}
