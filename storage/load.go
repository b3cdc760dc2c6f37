package storage

import (
	"log/slog"
	"time"

	"sport-tracker-api/models"
)

// LoadOrDefault reads the store and decodes it into an AppState. An
// absent store yields the first-run default; a malformed store is
// logged and also falls back to the default rather than crashing.
// defaultState is called lazily so "now" is taken at load time.
func LoadOrDefault(store *FileStore, defaultState func(now time.Time) *models.AppState) *models.AppState {
	data, ok, err := store.Read()
	if err != nil {
		slog.Error("state store unreadable, starting empty", "path", store.Path(), "err", err)
		return defaultState(time.Now())
	}
	if !ok {
		return defaultState(time.Now())
	}
	st, err := Decode(data)
	if err != nil {
		slog.Error("state store corrupt, starting empty", "path", store.Path(), "err", err)
		return defaultState(time.Now())
	}
	return st
}
