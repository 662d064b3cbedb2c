package score

import (
	"fmt"
	"math"
	"sort"
)

// Entry pairs a category with its formatted percentage.
type Entry struct {
	Category   string `json:"category"`
	Percentage string `json:"percentage"`
}

// Ranking is an ordered list of entries, highest percentage first.
type Ranking []Entry

// Top returns the leading entry of the ranking.
func (r Ranking) Top() (Entry, bool) {
	if len(r) == 0 {
		return Entry{}, false
	}
	return r[0], true
}

// Lookup returns the percentage recorded for a category.
func (r Ranking) Lookup(category string) (string, bool) {
	for _, entry := range r {
		if entry.Category == category {
			return entry.Percentage, true
		}
	}
	return "", false
}

type rankedValue struct {
	entry   Entry
	rounded float64
}

// Normalize converts totals into percentages and ranks them descending.
//
// When the overall score is zero every category reports 0.00. Equal
// percentages keep the category-set order.
func Normalize(totals Totals) Ranking {
	overall := totals.Overall()
	values := make([]rankedValue, 0, len(totals.categories))
	for _, category := range totals.categories {
		pct := 0.0
		if overall != 0 {
			pct = totals.values[category] / overall * 100
		}
		values = append(values, rankedValue{
			entry:   Entry{Category: category, Percentage: FormatPercentage(pct)},
			rounded: roundHundredths(pct),
		})
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].rounded > values[j].rounded
	})
	ranking := make(Ranking, 0, len(values))
	for _, value := range values {
		ranking = append(ranking, value.entry)
	}
	return ranking
}

// FormatPercentage renders a percentage with exactly two decimals.
func FormatPercentage(pct float64) string {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		pct = 0
	}
	out := fmt.Sprintf("%.2f", pct)
	if out == "-0.00" {
		return "0.00"
	}
	return out
}

func roundHundredths(value float64) float64 {
	return math.Round(value*100) / 100
}
