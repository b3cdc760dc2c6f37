package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"sport-tracker-api/models"
	"sport-tracker-api/types"
)

// ErrCorruptData is returned when persisted or imported bytes do not
// parse into the expected snapshot shape. Callers must leave their
// current state untouched when they see it.
var ErrCorruptData = errors.New("corrupt snapshot data")

// snapshotActivity is the persisted activity shape. The ID is the map
// key, not a field, matching snapshots written by earlier clients.
type snapshotActivity struct {
	Name string  `json:"name"`
	Unit string  `json:"unit"`
	Icon string  `json:"icon"`
	Goal float64 `json:"goal"`
}

type snapshot struct {
	CurrentDate string                        `json:"currentDate"`
	Activities  map[string]snapshotActivity   `json:"activities"`
	Logs        map[string]map[string]float64 `json:"logs"`
	View        string                        `json:"view"`
}

// Encode serializes a state copy into the portable snapshot format:
// currentDate as an ISO-8601 date-time string, activities and logs as
// string-keyed mappings, plus the display-mode hint.
func Encode(st models.AppState) ([]byte, error) {
	snap := snapshot{
		CurrentDate: st.CurrentDate.UTC().Format(time.RFC3339),
		Activities:  make(map[string]snapshotActivity, len(st.Activities)),
		Logs:        st.Logs,
		View:        st.View,
	}
	if snap.Logs == nil {
		snap.Logs = map[string]map[string]float64{}
	}
	for id, a := range st.Activities {
		snap.Activities[id] = snapshotActivity{
			Name: a.Name,
			Unit: a.Unit,
			Icon: a.Icon,
			Goal: a.Goal,
		}
	}
	return json.Marshal(snap)
}

// Decode parses snapshot bytes into a fresh AppState. It is
// all-or-nothing: any parse failure or wrong-shaped top-level key
// yields ErrCorruptData and no state. Values are re-clamped and icons
// re-derived so a hand-edited or legacy snapshot cannot smuggle in a
// state the engine's own mutations could never have produced.
func Decode(data []byte) (*models.AppState, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	activitiesRaw, ok := raw["activities"]
	if !ok {
		return nil, fmt.Errorf("%w: missing activities", ErrCorruptData)
	}
	var activities map[string]snapshotActivity
	if err := json.Unmarshal(activitiesRaw, &activities); err != nil {
		return nil, fmt.Errorf("%w: activities is not a mapping", ErrCorruptData)
	}

	logsRaw, ok := raw["logs"]
	if !ok {
		return nil, fmt.Errorf("%w: missing logs", ErrCorruptData)
	}
	var logs map[string]map[string]float64
	if err := json.Unmarshal(logsRaw, &logs); err != nil {
		return nil, fmt.Errorf("%w: logs is not a mapping", ErrCorruptData)
	}

	currentDate, err := decodeCurrentDate(raw["currentDate"])
	if err != nil {
		return nil, err
	}

	view := "dashboard"
	if viewRaw, ok := raw["view"]; ok {
		if err := json.Unmarshal(viewRaw, &view); err != nil || view == "" {
			view = "dashboard"
		}
	}

	st := &models.AppState{
		CurrentDate: currentDate,
		Activities:  make(map[string]*models.Activity, len(activities)),
		Logs:        make(map[string]map[string]float64, len(logs)),
		View:        view,
	}
	for id, sa := range activities {
		goal := sa.Goal
		if goal < 0 {
			goal = 0
		}
		st.Activities[id] = &models.Activity{
			ID:   id,
			Name: sa.Name,
			Unit: sa.Unit,
			Icon: types.IconForUnit(sa.Unit),
			Goal: goal,
		}
	}
	for date, bucket := range logs {
		if len(bucket) == 0 {
			continue
		}
		b := make(map[string]float64, len(bucket))
		for id, v := range bucket {
			if v < 0 {
				v = 0
			}
			b[id] = v
		}
		st.Logs[date] = b
	}

	// IDs carry a base36 time prefix, so sorting them recovers creation
	// order for stable display.
	st.Order = make([]string, 0, len(st.Activities))
	for id := range st.Activities {
		st.Order = append(st.Order, id)
	}
	sort.Strings(st.Order)

	return st, nil
}

// decodeCurrentDate accepts the RFC3339 date-time written by this code
// and by the original client, plus a bare YYYY-MM-DD for hand-written
// imports.
func decodeCurrentDate(raw json.RawMessage) (time.Time, error) {
	if raw == nil {
		return time.Time{}, fmt.Errorf("%w: missing currentDate", ErrCorruptData)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, fmt.Errorf("%w: currentDate is not a string", ErrCorruptData)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := models.ParseDateKey(s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: unparseable currentDate %q", ErrCorruptData, s)
}
