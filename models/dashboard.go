package models

// DailyCompletion summarizes one day across the whole registry.
// Percentage is rounded to one decimal and is 0 when the registry is empty.
type DailyCompletion struct {
	TotalActivities int     `json:"totalActivities"`
	CompletedCount  int     `json:"completedCount"`
	Percentage      float64 `json:"percentage"`
}

// ActivityStatus is one dashboard card: the activity plus its recorded
// value and progress for the requested day. Step is the per-click
// adjustment size the interaction layer should use.
type ActivityStatus struct {
	Activity
	Value     float64 `json:"value"`
	Progress  float64 `json:"progress"`
	Step      float64 `json:"step"`
	Completed bool    `json:"completed"`
}

// SeriesPoint is one chart sample: a date key paired with the value
// recorded for the activity on that day (0 when nothing was logged).
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
