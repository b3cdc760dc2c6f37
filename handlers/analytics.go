package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"sport-tracker-api/state"
	"sport-tracker-api/types"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	engine *state.Engine
}

func NewAnalyticsHandler(engine *state.Engine) *AnalyticsHandler {
	return &AnalyticsHandler{engine: engine}
}

// GetSeries returns the historical series for one activity: the most
// recent logged dates in chronological order with that activity's values.
// Together with the goal this is everything a line chart needs; drawing
// stays with the front end.
func (h *AnalyticsHandler) GetSeries(c *gin.Context) {
	id := c.Param("id")
	activity, ok := h.engine.Get(id)
	if !ok {
		respondError(c, fmt.Errorf("%w: %s", state.ErrNotFound, id))
		return
	}

	maxPoints := state.DefaultSeriesPoints
	if raw := c.Query("maxPoints"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "maxPoints must be a positive integer"))
			return
		}
		maxPoints = n
	}

	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{
		"activity": activity,
		"points":   h.engine.Series(id, maxPoints),
	}))
}
