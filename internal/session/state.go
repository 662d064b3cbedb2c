package session

// State identifies a step of a questionnaire session.
type State int

const (
	// StateStart is the initial state before any input.
	StateStart State = iota
	// StateCollectingName waits for the respondent's name.
	StateCollectingName
	// StateAskingQuestions walks the question bank.
	StateAskingQuestions
	// StateAggregating normalizes and ranks the totals.
	StateAggregating
	// StatePersisting appends and saves the result record.
	StatePersisting
	// StateDone reports the ranked result.
	StateDone
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateCollectingName:
		return "collecting-name"
	case StateAskingQuestions:
		return "asking-questions"
	case StateAggregating:
		return "aggregating"
	case StatePersisting:
		return "persisting"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Transition describes a state change. Question is the zero-based index
// while in StateAskingQuestions and -1 otherwise.
type Transition struct {
	State    State
	Question int
	Total    int
}

// Observer receives state transitions.
type Observer func(Transition)
