package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"sport-tracker-api/observability"
	"sport-tracker-api/pkg/notify"
	"sport-tracker-api/state"
	"sport-tracker-api/storage"
	"sport-tracker-api/types"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// ExportFilename is the fixed download name for exported snapshots.
const ExportFilename = "sport-tracker-data.json"

const maxImportBytes = 10 << 20

type TransferHandler struct {
	committer
	engine *state.Engine
}

func NewTransferHandler(engine *state.Engine, saver *storage.Writer, notifier notify.Notifier) *TransferHandler {
	return &TransferHandler{
		committer: committer{saver: saver, notifier: notifier},
		engine:    engine,
	}
}

// Export streams the current snapshot as a downloadable file. The bytes
// are exactly what the persistence adapter writes to the local store.
func (h *TransferHandler) Export(c *gin.Context) {
	data, err := storage.Encode(h.engine.Export())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename))
	c.Data(http.StatusOK, "application/json", data)
}

// Import replaces the whole state from an uploaded snapshot file.
// All-or-nothing: the upload is content-sniffed, then decoded and shape
// validated in full before the engine swaps it in. On any failure the
// current state is untouched.
func (h *TransferHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeInvalidRequest, "file is required"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImportBytes))
	if err != nil {
		respondError(c, err)
		return
	}

	mtype := mimetype.Detect(data)
	if !mtype.Is("application/json") && !strings.HasPrefix(mtype.String(), "text/") {
		observability.RecordImportFailure()
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeCorruptData,
			fmt.Sprintf("expected a JSON snapshot, got %s", mtype.String())))
		return
	}

	st, err := storage.Decode(data)
	if err != nil {
		observability.RecordImportFailure()
		respondError(c, err)
		return
	}

	h.engine.Replace(st)
	observability.SetActivityCount(len(h.engine.List()))
	h.commit("import", "state")
	// Imports are rare and replace everything, so persist before replying.
	if h.saver != nil {
		if err := h.saver.Sync(); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"message": "State imported successfully"}))
}
