package handlers

import (
	"net/http"

	"sport-tracker-api/observability"
	"sport-tracker-api/pkg/notify"
	"sport-tracker-api/state"
	"sport-tracker-api/storage"
	"sport-tracker-api/types"

	"github.com/gin-gonic/gin"
)

type ActivitiesHandler struct {
	committer
	engine *state.Engine
}

func NewActivitiesHandler(engine *state.Engine, saver *storage.Writer, notifier notify.Notifier) *ActivitiesHandler {
	return &ActivitiesHandler{
		committer: committer{saver: saver, notifier: notifier},
		engine:    engine,
	}
}

type activityRequest struct {
	Name string  `json:"name"`
	Unit string  `json:"unit"`
	Goal float64 `json:"goal"`
}

func (h *ActivitiesHandler) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, types.NewSuccessResponse(h.engine.List()))
}

func (h *ActivitiesHandler) CreateActivity(c *gin.Context) {
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	created, err := h.engine.Create(req.Name, req.Unit, req.Goal)
	if err != nil {
		respondError(c, err)
		return
	}
	observability.SetActivityCount(len(h.engine.List()))
	h.commit("createActivity", "activities")
	c.JSON(http.StatusCreated, types.NewSuccessResponse(created))
}

func (h *ActivitiesHandler) UpdateActivity(c *gin.Context) {
	id := c.Param("id")
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	updated, err := h.engine.Update(id, req.Name, req.Unit, req.Goal)
	if err != nil {
		respondError(c, err)
		return
	}
	h.commit("updateActivity", "activities")
	c.JSON(http.StatusOK, types.NewSuccessResponse(updated))
}

func (h *ActivitiesHandler) DeleteActivity(c *gin.Context) {
	id := c.Param("id")
	if err := h.engine.Remove(id); err != nil {
		respondError(c, err)
		return
	}
	observability.SetActivityCount(len(h.engine.List()))
	h.commit("deleteActivity", "activities")
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"message": "Activity deleted successfully"}))
}
