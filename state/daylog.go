package state

import "sort"

// Value returns the value recorded for an activity on a day, or 0 when
// nothing was recorded. It never materializes a bucket.
func (e *Engine) Value(date, activityID string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.valueLocked(date, activityID)
}

func (e *Engine) valueLocked(date, activityID string) float64 {
	if bucket, ok := e.state.Logs[date]; ok {
		return bucket[activityID]
	}
	return 0
}

// SetValue overwrites the recorded value, clamped at 0.
func (e *Engine) SetValue(date, activityID string, value float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setValueLocked(date, activityID, value)
}

func (e *Engine) setValueLocked(date, activityID string, value float64) float64 {
	if value < 0 {
		value = 0
	}
	bucket, ok := e.state.Logs[date]
	if !ok {
		bucket = make(map[string]float64)
		e.state.Logs[date] = bucket
	}
	bucket[activityID] = value
	return value
}

// Adjust adds a delta to the recorded value, clamping the result at 0,
// and returns the new value. The store is unit-agnostic; the per-click
// step policy lives with the interaction layer.
func (e *Engine) Adjust(date, activityID string, delta float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setValueLocked(date, activityID, e.valueLocked(date, activityID)+delta)
}

// PurgeActivity removes an activity's entries from every date bucket.
func (e *Engine) PurgeActivity(activityID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.purgeActivityLocked(activityID)
}

func (e *Engine) purgeActivityLocked(activityID string) {
	for date, bucket := range e.state.Logs {
		delete(bucket, activityID)
		if len(bucket) == 0 {
			delete(e.state.Logs, date)
		}
	}
}

// DatesAscending returns the date keys actually present in the log,
// sorted ascending. Lexicographic order of YYYY-MM-DD keys is
// chronological order.
func (e *Engine) DatesAscending() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.datesAscendingLocked()
}

func (e *Engine) datesAscendingLocked() []string {
	dates := make([]string, 0, len(e.state.Logs))
	for date := range e.state.Logs {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
