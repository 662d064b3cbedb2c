package live

import (
	"strings"
	"testing"

	"petquiz/internal/session"
)

func transition(state session.State, question, total int) session.Transition {
	return session.Transition{State: state, Question: question, Total: total}
}

// TestReduceSessionLifecycle verifies progress follows the session states.
func TestReduceSessionLifecycle(t *testing.T) {
	tracker := NewTracker(true)
	tracker.Observe(transition(session.StateStart, -1, 0))
	tracker.Observe(transition(session.StateCollectingName, -1, 4))
	if got := tracker.Header(); got != "Pet quiz | 4 questions" {
		t.Fatalf("unexpected name header %q", got)
	}

	tracker.Observe(transition(session.StateAskingQuestions, 2, 4))
	state := tracker.State()
	if state.Question != 2 || state.Answered != 2 || state.Total != 4 {
		t.Fatalf("unexpected state %+v", state)
	}
	header := tracker.Header()
	if !strings.HasPrefix(header, "Question 3/4 ") {
		t.Fatalf("unexpected question header %q", header)
	}
	if !strings.Contains(header, "["+strings.Repeat("#", 10)+strings.Repeat(".", 10)+"]") {
		t.Fatalf("expected half-filled bar, got %q", header)
	}

	tracker.Observe(transition(session.StateDone, -1, 4))
	state = tracker.State()
	if state.Answered != 4 || state.Question != -1 {
		t.Fatalf("expected completed state, got %+v", state)
	}
	if got := tracker.Header(); got != "" {
		t.Fatalf("expected no header after completion, got %q", got)
	}
}

// TestRenderBarBounds verifies the bar for empty and full progress.
func TestRenderBarBounds(t *testing.T) {
	if got := renderBar(0, 0); got != "" {
		t.Fatalf("expected empty bar, got %q", got)
	}
	if got := renderBar(3, 3); got != "["+strings.Repeat("#", barWidth)+"]" {
		t.Fatalf("expected full bar, got %q", got)
	}
}
