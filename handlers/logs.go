package handlers

import (
	"fmt"
	"net/http"

	"sport-tracker-api/models"
	"sport-tracker-api/pkg/notify"
	"sport-tracker-api/state"
	"sport-tracker-api/storage"
	"sport-tracker-api/types"

	"github.com/gin-gonic/gin"
)

type LogsHandler struct {
	committer
	engine *state.Engine
}

func NewLogsHandler(engine *state.Engine, saver *storage.Writer, notifier notify.Notifier) *LogsHandler {
	return &LogsHandler{
		committer: committer{saver: saver, notifier: notifier},
		engine:    engine,
	}
}

func (h *LogsHandler) resolve(c *gin.Context) (date, activityID string, ok bool) {
	date = c.Param("date")
	if _, err := models.ParseDateKey(date); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "date must be YYYY-MM-DD"))
		return "", "", false
	}
	activityID = c.Param("activityId")
	if _, exists := h.engine.Get(activityID); !exists {
		respondError(c, fmt.Errorf("%w: %s", state.ErrNotFound, activityID))
		return "", "", false
	}
	return date, activityID, true
}

// SetValue overwrites the recorded value for one activity on one day.
// Negative values clamp to 0 before storage.
func (h *LogsHandler) SetValue(c *gin.Context) {
	date, activityID, ok := h.resolve(c)
	if !ok {
		return
	}
	var req struct {
		Value *float64 `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "value is required"))
		return
	}
	stored := h.engine.SetValue(date, activityID, *req.Value)
	h.commit("setValue", "logs")
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"date": date, "value": stored}))
}

// Adjust applies a signed number of clicks. The per-click step depends
// on the activity's unit: steps move by 100, everything else by 5. The
// result clamps at 0, so a cancelling click pair restores the previous
// value unless it would have gone negative.
func (h *LogsHandler) Adjust(c *gin.Context) {
	date, activityID, ok := h.resolve(c)
	if !ok {
		return
	}
	var req struct {
		Direction *int `json:"direction"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Direction == nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "direction is required"))
		return
	}
	activity, _ := h.engine.Get(activityID)
	step := types.StepForUnit(activity.Unit)
	value := h.engine.Adjust(date, activityID, float64(*req.Direction)*step)
	h.commit("adjust", "logs")
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"date": date, "value": value, "step": step}))
}
