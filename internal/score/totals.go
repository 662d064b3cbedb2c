package score

import "petquiz/internal/question"

// Totals holds cumulative weights per category in category-set order.
type Totals struct {
	categories []string
	values     map[string]float64
}

// NewTotals returns all-zero totals for an ordered category set.
func NewTotals(categories []string) Totals {
	values := make(map[string]float64, len(categories))
	ordered := make([]string, 0, len(categories))
	for _, category := range categories {
		if _, exists := values[category]; exists {
			continue
		}
		values[category] = 0
		ordered = append(ordered, category)
	}
	return Totals{categories: ordered, values: values}
}

// Categories returns the category set in enumeration order.
func (t Totals) Categories() []string {
	return append([]string(nil), t.categories...)
}

// Get returns the total for a category.
func (t Totals) Get(category string) float64 {
	return t.values[category]
}

// Overall returns the sum of all category totals.
func (t Totals) Overall() float64 {
	var sum float64
	for _, category := range t.categories {
		sum += t.values[category]
	}
	return sum
}

// Accumulate adds an answer's weights for every known category and returns
// the new totals. The receiver is left unchanged; weights for categories
// outside the set are ignored.
func Accumulate(totals Totals, answer question.Answer) Totals {
	next := Totals{
		categories: totals.categories,
		values:     make(map[string]float64, len(totals.categories)),
	}
	for _, category := range totals.categories {
		next.values[category] = totals.values[category] + answer.Score(category)
	}
	return next
}
