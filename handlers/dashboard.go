package handlers

import (
	"net/http"

	"sport-tracker-api/models"
	"sport-tracker-api/pkg/notify"
	"sport-tracker-api/state"
	"sport-tracker-api/storage"
	"sport-tracker-api/types"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	committer
	engine *state.Engine
}

func NewDashboardHandler(engine *state.Engine, saver *storage.Writer, notifier notify.Notifier) *DashboardHandler {
	return &DashboardHandler{
		committer: committer{saver: saver, notifier: notifier},
		engine:    engine,
	}
}

// GetDashboard returns the day summary and the active/completed card
// partitions for the requested date (default: the current date). It is
// a pure projection; rendering stays with the front end.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = h.engine.CurrentDateKey()
	} else if _, err := models.ParseDateKey(date); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "date must be YYYY-MM-DD"))
		return
	}
	active, completed := h.engine.Partition(date)
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{
		"date":      date,
		"summary":   h.engine.DailyCompletion(date),
		"active":    active,
		"completed": completed,
	}))
}

func (h *DashboardHandler) GetDate(c *gin.Context) {
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"date": h.engine.CurrentDateKey()}))
}

// ShiftDate moves the current date by a signed number of days. There is
// no bound in either direction.
func (h *DashboardHandler) ShiftDate(c *gin.Context) {
	var req struct {
		Days *int `json:"days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Days == nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "days is required"))
		return
	}
	date := h.engine.ShiftDate(*req.Days)
	h.commit("shiftDate", "date")
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"date": date}))
}

func (h *DashboardHandler) SetDate(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	if err := h.engine.SetDate(req.Date); err != nil {
		respondError(c, err)
		return
	}
	h.commit("setDate", "date")
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"date": h.engine.CurrentDateKey()}))
}

// SetView stores the display-mode hint. It round-trips through
// snapshots but the core never interprets it.
func (h *DashboardHandler) SetView(c *gin.Context) {
	var req struct {
		View string `json:"view"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	if err := h.engine.SetView(req.View); err != nil {
		respondError(c, err)
		return
	}
	h.commit("setView", "view")
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"view": h.engine.View()}))
}
