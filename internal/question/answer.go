package question

// MatchAnswer returns the answer whose label matches input case-insensitively.
func MatchAnswer(q Question, input string) (Answer, bool) {
	normalized := NormalizeAnswerText(input)
	if normalized == "" {
		return Answer{}, false
	}
	for _, answer := range q.Answers {
		if NormalizeAnswerText(answer.Label) == normalized {
			return answer, true
		}
	}
	return Answer{}, false
}
