// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmind/internal/modules/itinerary"
	"tripmind/internal/modules/quota"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrMissingDates), errors.Is(err, itinerary.ErrInvalidDates):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrPlanInFlight):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, quota.ErrQuotaExhausted):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, itinerary.ErrGenerationFailed):
		writeError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, itinerary.ErrNoPersistence):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
