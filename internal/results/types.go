package results

import (
	"time"

	"petquiz/internal/score"
)

// TimeLayout is the ISO-8601 layout used for Record.DateTime.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is one completed questionnaire session.
type Record struct {
	ID       string        `json:"id,omitempty"`
	Name     string        `json:"name"`
	DateTime string        `json:"dateTime"`
	Scores   score.Ranking `json:"scores"`
}

// Document is the on-disk results file.
type Document struct {
	Results []Record `json:"results"`
}

// FormatTime renders a completion time in UTC with millisecond precision.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Time parses the record's timestamp.
func (r Record) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, r.DateTime)
}
