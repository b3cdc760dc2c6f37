package state

import (
	"fmt"
	"sync"
	"time"

	"sport-tracker-api/models"
)

// Engine owns the AppState and is the only way to read or mutate it.
// Handlers run concurrently under gin, so every operation takes the
// engine lock; a mutation is atomic with respect to every other
// operation, and Export copies the state under the same lock so a
// snapshot always reflects a state that actually existed.
type Engine struct {
	mu    sync.RWMutex
	state *models.AppState
}

// NewEngine wraps an existing state, typically the result of
// storage.LoadOrDefault.
func NewEngine(st *models.AppState) *Engine {
	if st == nil {
		st = DefaultState(time.Now())
	}
	return &Engine{state: st}
}

// DefaultState is the first-run state: no activities, no logs, the
// dashboard pointing at today.
func DefaultState(now time.Time) *models.AppState {
	return &models.AppState{
		CurrentDate: now.UTC().Truncate(24 * time.Hour),
		Activities:  make(map[string]*models.Activity),
		Logs:        make(map[string]map[string]float64),
		View:        "dashboard",
	}
}

// Export returns a deep copy of the current state. The copy is taken
// under the read lock, so serializing it off-thread cannot observe a
// half-applied mutation.
func (e *Engine) Export() models.AppState {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := models.AppState{
		CurrentDate: e.state.CurrentDate,
		Activities:  make(map[string]*models.Activity, len(e.state.Activities)),
		Order:       append([]string(nil), e.state.Order...),
		Logs:        make(map[string]map[string]float64, len(e.state.Logs)),
		View:        e.state.View,
	}
	for id, a := range e.state.Activities {
		copied := *a
		out.Activities[id] = &copied
	}
	for date, bucket := range e.state.Logs {
		b := make(map[string]float64, len(bucket))
		for id, v := range bucket {
			b[id] = v
		}
		out.Logs[date] = b
	}
	return out
}

// Replace swaps in a fully validated state, e.g. a restored import.
// The previous state is discarded atomically; there is no partial adopt.
func (e *Engine) Replace(st *models.AppState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = st
}

// CurrentDateKey returns the date key the dashboard currently points at.
func (e *Engine) CurrentDateKey() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return models.DateKey(e.state.CurrentDate)
}

// ShiftDate moves the current date by the given number of days.
// The range is unbounded in both directions.
func (e *Engine) ShiftDate(days int) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.CurrentDate = e.state.CurrentDate.AddDate(0, 0, days)
	return models.DateKey(e.state.CurrentDate)
}

// SetDate points the dashboard at an explicit day.
func (e *Engine) SetDate(key string) error {
	t, err := models.ParseDateKey(key)
	if err != nil {
		return fmt.Errorf("%w: bad date %q", ErrValidation, key)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.CurrentDate = t
	return nil
}

// View returns the display-mode hint.
func (e *Engine) View() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.View
}

// SetView stores a display-mode hint. The core persists it but never
// interprets it.
func (e *Engine) SetView(view string) error {
	if view == "" {
		return fmt.Errorf("%w: empty view", ErrValidation)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.View = view
	return nil
}
