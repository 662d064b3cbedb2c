package live

import (
	"sync"

	"petquiz/internal/session"
)

// Tracker folds session transitions into State for the live prompt.
type Tracker struct {
	mu      sync.Mutex
	state   State
	noColor bool
}

// NewTracker returns a tracker with no progress recorded.
func NewTracker(noColor bool) *Tracker {
	return &Tracker{state: State{Question: -1}, noColor: noColor}
}

// Observe records a transition; it satisfies session.Observer.
func (t *Tracker) Observe(transition session.Transition) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = Reduce(t.state, transition)
}

// State returns the current progress.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Header renders the progress line for the next prompt.
func (t *Tracker) Header() string {
	return renderHeader(t.State(), t.noColor)
}
