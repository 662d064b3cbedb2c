package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"petquiz/internal/prompt"
	"petquiz/internal/question"
	"petquiz/internal/results"
	"petquiz/internal/score"
)

const (
	namePrompt    = "What is your name? "
	invalidAnswer = "Invalid answer. Please try again."
)

// ErrAborted reports that the session ended before results were persisted.
var ErrAborted = errors.New("questionnaire aborted")

// ErrSave wraps failures to persist the updated history.
var ErrSave = errors.New("save results")

// Store loads and saves the results history.
type Store interface {
	Load() ([]results.Record, error)
	Save([]results.Record) error
}

// BankLoader returns the question bank for a session.
type BankLoader func() (question.Bank, error)

// Runner drives one questionnaire session.
type Runner struct {
	LoadBank   BankLoader
	Store      Store
	Prompter   prompt.Prompter
	Categories []string
	Separator  string
	Out        io.Writer
	Logger     *log.Logger
	Observer   Observer
	Now        func() time.Time
	NewID      func() string
}

// Outcome is the result of a completed session.
type Outcome struct {
	Record   results.Record
	Totals   score.Totals
	Answered int
}

// Run executes the session: it collects a name, asks every question, ranks
// the totals, appends the record to the history and saves it. Nothing is
// saved unless every step before persisting succeeds.
func (r *Runner) Run(ctx context.Context) (Outcome, error) {
	if r.Prompter == nil {
		return Outcome{}, fmt.Errorf("prompter is required")
	}
	if r.Store == nil {
		return Outcome{}, fmt.Errorf("results store is required")
	}
	r.observe(StateStart, -1, 0)

	bank, err := r.loadBank()
	if err != nil {
		return Outcome{}, err
	}
	history := r.loadHistory()

	r.observe(StateCollectingName, -1, len(bank.Questions))
	name, err := r.Prompter.Prompt(ctx, namePrompt)
	if err != nil {
		return Outcome{}, abortErr("read name", err)
	}
	name = strings.TrimSpace(name)
	startedAt := r.now()

	totals := score.NewTotals(r.Categories)
	for i, q := range bank.Questions {
		r.observe(StateAskingQuestions, i, len(bank.Questions))
		answer, err := r.askQuestion(ctx, q)
		if err != nil {
			return Outcome{}, abortErr(fmt.Sprintf("question %d", i+1), err)
		}
		totals = score.Accumulate(totals, answer)
	}

	r.observe(StateAggregating, -1, len(bank.Questions))
	record := results.Record{
		ID:       r.newID(),
		Name:     name,
		DateTime: results.FormatTime(startedAt),
		Scores:   score.Normalize(totals),
	}

	r.observe(StatePersisting, -1, len(bank.Questions))
	updated := make([]results.Record, 0, len(history)+1)
	updated = append(updated, history...)
	updated = append(updated, record)
	if err := r.Store.Save(updated); err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrSave, err)
	}

	r.observe(StateDone, -1, len(bank.Questions))
	return Outcome{Record: record, Totals: totals, Answered: len(bank.Questions)}, nil
}

// askQuestion prompts until the input matches one of the allowed answers.
func (r *Runner) askQuestion(ctx context.Context, q question.Question) (question.Answer, error) {
	text := FormatQuestion(q, r.separator())
	for {
		input, err := r.Prompter.Prompt(ctx, text)
		if err != nil {
			return question.Answer{}, err
		}
		if answer, ok := question.MatchAnswer(q, input); ok {
			return answer, nil
		}
		fmt.Fprintln(r.out(), invalidAnswer)
	}
}

// loadBank returns the bank, substituting an empty one for read and parse
// failures. Validation failures are returned so the session never starts
// with a question that cannot be answered.
func (r *Runner) loadBank() (question.Bank, error) {
	if r.LoadBank == nil {
		return question.Bank{}, nil
	}
	bank, err := r.LoadBank()
	if err == nil {
		return bank, nil
	}
	var validationErr *question.ValidationError
	if errors.As(err, &validationErr) {
		return question.Bank{}, err
	}
	r.logf("Error loading questions: %v", err)
	return question.Bank{}, nil
}

// loadHistory returns stored records or an empty history on any failure.
func (r *Runner) loadHistory() []results.Record {
	records, err := r.Store.Load()
	if err != nil {
		r.logf("Error loading results: %v", err)
		return nil
	}
	return records
}

// FormatQuestion renders the prompt text for a question.
func FormatQuestion(q question.Question, separator string) string {
	labels := q.Labels()
	if len(labels) == 0 {
		return q.Text + " "
	}
	return fmt.Sprintf("%s (%s) ", q.Text, strings.Join(labels, separator))
}

func abortErr(step string, err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: input closed", ErrAborted, step)
	}
	if errors.Is(err, prompt.ErrInterrupted) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %w", ErrAborted, step, err)
	}
	return fmt.Errorf("%s: %w", step, err)
}

func (r *Runner) observe(state State, index, total int) {
	if r.Observer != nil {
		r.Observer(Transition{State: state, Question: index, Total: total})
	}
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}

func (r *Runner) separator() string {
	if r.Separator == "" {
		return "/"
	}
	return r.Separator
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r *Runner) newID() string {
	if r.NewID == nil {
		return uuid.NewString()
	}
	return r.NewID()
}
