package models

import "time"

// DateKeyLayout is the canonical calendar-day key used to index logs.
// Lexicographic order of keys is chronological order.
const DateKeyLayout = "2006-01-02"

// AppState is the aggregate root of the tracker: the activity registry,
// the sparse day-indexed log, the date the dashboard points at, and a
// display-mode hint the core carries but never interprets.
//
// Activities maps ID to definition; Order keeps insertion order for
// stable display. Logs maps date key to activity ID to recorded value;
// absent keys mean "nothing recorded", equivalent to 0 for completion
// math but not materialized.
type AppState struct {
	CurrentDate time.Time
	Activities  map[string]*Activity
	Order       []string
	Logs        map[string]map[string]float64
	View        string
}

// DateKey renders a time as a canonical YYYY-MM-DD key in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateKeyLayout)
}

// ParseDateKey parses a canonical YYYY-MM-DD key.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse(DateKeyLayout, s)
}
