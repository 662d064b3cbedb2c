package testutil

import (
	"io"
	"strings"
)

// ScriptedInput joins lines into a reader that ends after the last line,
// as a respondent typing each line and then closing stdin would.
func ScriptedInput(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
