// Package prompt implements the blocking prompt(text) -> string boundary
// used by questionnaire sessions.
package prompt

import (
	"context"
	"errors"
)

// ErrInterrupted reports that the respondent cancelled input (Ctrl+C).
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter shows text and blocks until the respondent submits a line.
//
// Implementations return io.EOF when input is exhausted and ErrInterrupted
// when the respondent cancels.
type Prompter interface {
	Prompt(ctx context.Context, text string) (string, error)
}

// Func adapts a function to the Prompter interface.
type Func func(ctx context.Context, text string) (string, error)

// Prompt calls f.
func (f Func) Prompt(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
