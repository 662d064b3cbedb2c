package live

import "petquiz/internal/session"

// State captures the progress shown above the live prompt.
type State struct {
	Phase    session.State
	Question int
	Total    int
	Answered int
}
