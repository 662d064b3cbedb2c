package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Live prompts with a Bubble Tea text input, one program per prompt.
type Live struct {
	in      io.Reader
	out     io.Writer
	noColor bool
	header  func() string
}

// LiveOptions configures the live prompter.
type LiveOptions struct {
	NoColor bool
	// Header, when set, supplies a line rendered above each prompt.
	Header func() string
}

// NewLive returns a prompter that renders an interactive input line.
func NewLive(in io.Reader, out io.Writer, opts LiveOptions) *Live {
	return &Live{in: in, out: out, noColor: opts.NoColor, header: opts.Header}
}

// Prompt runs an input program for text and returns the submitted value.
func (l *Live) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	program := tea.NewProgram(
		newInputModel(l.headerLine(), text, l.noColor),
		tea.WithInput(l.in),
		tea.WithOutput(l.out),
		tea.WithContext(ctx),
	)
	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrInterrupted
		}
		return "", fmt.Errorf("run prompt: %w", err)
	}
	model, ok := final.(inputModel)
	if !ok {
		return "", fmt.Errorf("run prompt: unexpected model %T", final)
	}
	return model.result()
}

func (l *Live) headerLine() string {
	if l.header == nil {
		return ""
	}
	return l.header()
}

// inputModel collects a single line of input.
type inputModel struct {
	header      string
	label       string
	input       textinput.Model
	submitted   bool
	interrupted bool
	noColor     bool
}

func newInputModel(header, label string, noColor bool) inputModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type your answer"
	input.CharLimit = 256
	input.Focus()
	if !noColor {
		input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	}
	return inputModel{header: header, label: label, input: input, noColor: noColor}
}

// Init starts the cursor blink.
func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles submit and cancel keys and forwards the rest to the input.
func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.interrupted = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the question and the input line.
func (m inputModel) View() string {
	label := m.label
	if !m.noColor {
		label = lipgloss.NewStyle().Bold(true).Render(label)
	}
	if m.submitted || m.interrupted {
		return label + m.input.Value() + "\n"
	}
	view := label + "\n" + m.input.View() + "\n"
	if m.header != "" {
		view = m.header + "\n" + view
	}
	return view
}

func (m inputModel) result() (string, error) {
	switch {
	case m.interrupted:
		return "", ErrInterrupted
	case m.submitted:
		return m.input.Value(), nil
	default:
		return "", io.EOF
	}
}
