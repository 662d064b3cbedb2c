package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"petquiz/internal/session"
)

const barWidth = 20

// renderHeader renders the progress line for the current phase.
func renderHeader(state State, noColor bool) string {
	switch {
	case state.Phase == session.StateCollectingName:
		return stylize(fmt.Sprintf("Pet quiz | %d questions", state.Total), noColor, lipgloss.Color("33"))
	case state.Question >= 0 && state.Total > 0:
		line := fmt.Sprintf("Question %d/%d %s", state.Question+1, state.Total, renderBar(state.Answered, state.Total))
		return stylize(line, noColor, lipgloss.Color("242"))
	default:
		return ""
	}
}

// renderBar draws answered/total as a fixed-width bar.
func renderBar(answered, total int) string {
	if total <= 0 {
		return ""
	}
	filled := answered * barWidth / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
