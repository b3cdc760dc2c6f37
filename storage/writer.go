package storage

import (
	"log/slog"
	"sync"

	"sport-tracker-api/observability"
)

// Writer serializes snapshot writes behind every mutating operation.
// Trigger is fire-and-forget: triggers landing while a write is in
// flight coalesce into one follow-up write, and because the source
// reads the engine under its lock, the last write always reflects the
// final state in the mutation order.
type Writer struct {
	store  *FileStore
	source func() ([]byte, error)

	mu   sync.Mutex
	kick chan struct{}
}

// NewWriter starts the background write loop. source must return a
// consistent snapshot, typically Encode over Engine.Export.
func NewWriter(store *FileStore, source func() ([]byte, error)) *Writer {
	w := &Writer{
		store:  store,
		source: source,
		kick:   make(chan struct{}, 1),
	}
	go func() {
		for range w.kick {
			if err := w.Sync(); err != nil {
				slog.Error("snapshot write failed", "path", store.Path(), "err", err)
			}
		}
	}()
	return w
}

// Trigger requests a snapshot write without blocking the caller.
func (w *Writer) Trigger() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Sync performs one snapshot write synchronously. Used by the write
// loop, and directly where durability must be observed (tests, import).
func (w *Writer) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := w.source()
	if err == nil {
		err = w.store.Write(data)
	}
	observability.RecordSnapshotWrite(err)
	return err
}
