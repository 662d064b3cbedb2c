package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"petquiz/internal/results"
)

// RenderHTML renders the history page into a string.
func RenderHTML(ctx context.Context, records []results.Record, categories []string) (string, error) {
	var builder strings.Builder
	if err := Page(records, categories).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// Page renders every record with one column per category.
func Page(records []results.Record, categories []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html>
<html lang="en"><head><meta charset="utf-8"><title>Pet Quiz Results</title>
<style>body{font-family:sans-serif;margin:2rem}table{border-collapse:collapse}th,td{border:1px solid #ccc;padding:.3rem .6rem;text-align:right}th:first-child,td:first-child,td.top{text-align:left}</style>
</head><body><h1>Pet Quiz Results</h1>`); err != nil {
			return err
		}
		if len(records) == 0 {
			if _, err := io.WriteString(w, `<p>No results recorded yet.</p>`); err != nil {
				return err
			}
		} else if err := resultsTable(records, categories).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

func resultsTable(records []results.Record, categories []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<table><thead><tr><th>Name</th><th>Completed</th><th>Top</th>`)
		for _, category := range categories {
			fmt.Fprintf(&b, `<th>%s</th>`, templ.EscapeString(category))
		}
		b.WriteString(`</tr></thead><tbody>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		for _, record := range records {
			if err := recordRow(record, categories).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

func recordRow(record results.Record, categories []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<tr id="%s"><td>%s</td><td>%s</td><td class="top">%s</td>`,
			templ.EscapeString(record.ID),
			templ.EscapeString(formatName(record)),
			templ.EscapeString(record.DateTime),
			templ.EscapeString(formatTopCategory(record.Scores)))
		for _, category := range categories {
			pct, ok := record.Scores.Lookup(category)
			if !ok {
				pct = "-"
			}
			fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(pct))
		}
		b.WriteString("</tr>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
