package handlers

import (
	"errors"
	"net/http"

	"sport-tracker-api/observability"
	"sport-tracker-api/pkg/notify"
	"sport-tracker-api/state"
	"sport-tracker-api/storage"
	"sport-tracker-api/types"

	"github.com/gin-gonic/gin"
)

// respondError maps core errors onto the API envelope. Everything the
// engine and the persistence adapter return is recoverable; nothing here
// terminates the process.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, state.ErrNotFound):
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, err.Error()))
	case errors.Is(err, state.ErrValidation):
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
	case errors.Is(err, storage.ErrCorruptData):
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeCorruptData, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
	}
}

// committer bundles the side effects every committed mutation carries:
// a metrics tick, a fire-and-forget snapshot write, and a refresh push
// to open dashboards. Handlers embed it.
type committer struct {
	saver    *storage.Writer
	notifier notify.Notifier
}

func (p committer) commit(op, scope string) {
	observability.RecordMutation(op)
	if p.saver != nil {
		p.saver.Trigger()
	}
	if p.notifier != nil {
		p.notifier.StateChanged(scope)
	}
}
