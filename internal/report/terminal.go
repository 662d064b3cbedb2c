package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"petquiz/internal/results"
	"petquiz/internal/score"
)

// WriteRanking prints a completed session's ranking, one category per line.
func WriteRanking(w io.Writer, ranking score.Ranking, noColor bool) {
	width := 0
	for _, entry := range ranking {
		width = max(width, len(entry.Category))
	}
	for i, entry := range ranking {
		line := fmt.Sprintf("%d. %-*s %6s%%", i+1, width, entry.Category, entry.Percentage)
		if i == 0 {
			line = stylize(line, noColor, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")))
		}
		fmt.Fprintln(w, line)
	}
}

// HistoryTable renders the most recent records as a table.
func HistoryTable(records []results.Record, limit int, noColor bool) string {
	shown := lastN(records, limit)
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 20},
		{Title: "Completed", Width: 24},
		{Title: "Top", Width: 18},
		{Title: "Scores", Width: 48},
	}
	offset := len(records) - len(shown)
	rows := make([]table.Row, 0, len(shown))
	for i, record := range shown {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", offset+i+1),
			formatName(record),
			formatCompleted(record),
			formatTopCategory(record.Scores),
			formatRanking(record.Scores),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2),
	)
	t.SetStyles(tableStyles(noColor))
	return strings.TrimRight(t.View(), " \n") + "\n"
}

// tableStyles returns table styles for history output.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	if noColor {
		styles.Header = lipgloss.NewStyle().Bold(false).Padding(0, 1)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	return styles
}

// stylize applies optional styling.
func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
