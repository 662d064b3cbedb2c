package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Plain prompts on a writer and reads newline-terminated answers.
type Plain struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPlain returns a line-oriented prompter.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{reader: bufio.NewReader(in), out: out}
}

// Prompt writes text and returns the next line without its line ending.
// A final unterminated line is returned before io.EOF is reported.
func (p *Plain) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, text)
	line, err := readLine(p.reader)
	if err == io.EOF {
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// String asks for a string value with an optional default, repeating the
// question until a non-empty value is supplied.
func String(ctx context.Context, p Prompter, label, defaultValue string) (string, error) {
	for {
		text := fmt.Sprintf("%s: ", label)
		if defaultValue != "" {
			text = fmt.Sprintf("%s [%s]: ", label, defaultValue)
		}
		line, err := p.Prompt(ctx, text)
		if err != nil && err != io.EOF {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" && defaultValue != "" {
			return defaultValue, nil
		}
		if line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("missing input for %s", label)
		}
	}
}

// YesNo prompts for a yes/no response with a default. notice receives the
// re-prompt hint after an unrecognised reply.
func YesNo(ctx context.Context, p Prompter, notice io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		line, err := p.Prompt(ctx, fmt.Sprintf("%s [%s]: ", label, suffix))
		if err != nil && err != io.EOF {
			return false, err
		}
		line = strings.TrimSpace(strings.ToLower(line))
		if line == "" {
			return defaultYes, nil
		}
		switch line {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if err == io.EOF {
				return false, fmt.Errorf("invalid response %q", line)
			}
			fmt.Fprintln(notice, "Please answer yes or no.")
		}
	}
}
