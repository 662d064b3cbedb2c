package live

import "petquiz/internal/session"

// Reduce applies a session transition to the progress state.
func Reduce(state State, transition session.Transition) State {
	if transition.Total >= 0 {
		state.Total = transition.Total
	}
	switch transition.State {
	case session.StateAskingQuestions:
		state.Question = transition.Question
		state.Answered = transition.Question
	case session.StateAggregating, session.StatePersisting, session.StateDone:
		state.Question = -1
		state.Answered = state.Total
	default:
		state.Question = -1
	}
	state.Phase = transition.State
	return state
}
