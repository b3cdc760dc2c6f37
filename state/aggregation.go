package state

import (
	"math"

	"sport-tracker-api/models"
	"sport-tracker-api/types"
)

// DefaultSeriesPoints is how many recent days a chart series covers
// unless the caller asks for a different window.
const DefaultSeriesPoints = 30

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// completed is the single completion test: the recorded value meets or
// exceeds the goal. A goal of 0 is satisfied by any recorded value,
// including the implicit 0 default.
func completed(value, goal float64) bool {
	return value >= goal
}

// progress is the per-card fill: value/goal capped at 100. A goal of 0
// counts as immediately satisfied rather than dividing by zero.
func progress(value, goal float64) float64 {
	if goal == 0 {
		return 100
	}
	return math.Min(value/goal*100, 100)
}

// DailyCompletion computes the day summary driving the dashboard
// progress bar.
func (e *Engine) DailyCompletion(date string) models.DailyCompletion {
	e.mu.RLock()
	defer e.mu.RUnlock()

	total := len(e.state.Activities)
	done := 0
	for id, a := range e.state.Activities {
		if completed(e.valueLocked(date, id), a.Goal) {
			done++
		}
	}
	out := models.DailyCompletion{TotalActivities: total, CompletedCount: done}
	if total > 0 {
		out.Percentage = round1(float64(done) / float64(total) * 100)
	}
	return out
}

// Partition classifies every activity for a day into exactly one of two
// card lists, active or completed, in registry insertion order.
func (e *Engine) Partition(date string) (active, done []models.ActivityStatus) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	active = []models.ActivityStatus{}
	done = []models.ActivityStatus{}
	for _, a := range e.listLocked() {
		value := e.valueLocked(date, a.ID)
		status := models.ActivityStatus{
			Activity:  *a,
			Value:     value,
			Progress:  progress(value, a.Goal),
			Step:      types.StepForUnit(a.Unit),
			Completed: completed(value, a.Goal),
		}
		if status.Completed {
			done = append(done, status)
		} else {
			active = append(active, status)
		}
	}
	return active, done
}

// Series returns the most recent maxPoints distinct logged dates in
// chronological order, each paired with the activity's value for that
// day (0 when absent). An ID not in the registry yields an empty series.
func (e *Engine) Series(activityID string, maxPoints int) []models.SeriesPoint {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if _, ok := e.state.Activities[activityID]; !ok {
		return []models.SeriesPoint{}
	}
	if maxPoints <= 0 {
		maxPoints = DefaultSeriesPoints
	}
	dates := e.datesAscendingLocked()
	if len(dates) > maxPoints {
		dates = dates[len(dates)-maxPoints:]
	}
	points := make([]models.SeriesPoint, 0, len(dates))
	for _, date := range dates {
		points = append(points, models.SeriesPoint{
			Date:  date,
			Value: e.valueLocked(date, activityID),
		})
	}
	return points
}
