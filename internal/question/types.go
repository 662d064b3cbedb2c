package question

// Bank is the question bank document loaded from JSON or YAML.
type Bank struct {
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single prompt with its allowed answers.
type Question struct {
	Text    string   `json:"question" yaml:"question"`
	Answers []Answer `json:"answers" yaml:"answers"`
}

// Answer is an allowed answer label and the category weights it contributes.
type Answer struct {
	Label  string             `json:"answer" yaml:"answer"`
	Scores map[string]float64 `json:"scores" yaml:"scores"`
}

// Labels returns the answer labels in bank order.
func (q Question) Labels() []string {
	labels := make([]string, 0, len(q.Answers))
	for _, answer := range q.Answers {
		labels = append(labels, answer.Label)
	}
	return labels
}

// Score returns the weight for a category, treating a missing entry as zero.
func (a Answer) Score(category string) float64 {
	return a.Scores[category]
}
