// README: Planning handlers (prompt-driven plan and direct generation).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmind/internal/modules/itinerary"
)

// generationTimeout bounds one model round-trip.
const generationTimeout = 30 * time.Second

type ItineraryHandler struct {
	planner *itinerary.Service
}

func NewItineraryHandler(planner *itinerary.Service) *ItineraryHandler {
	return &ItineraryHandler{planner: planner}
}

// PlanTrip handles POST /api/plan-trip. The body is a PlanForm; quick mode
// interprets the prompt, detailed mode takes the fields as entered.
func (h *ItineraryHandler) PlanTrip(c *gin.Context) {
	var form itinerary.PlanForm
	if err := c.ShouldBindJSON(&form); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	// One plan per client at a time, keyed by user when known.
	clientKey := form.UserID
	if clientKey == "" {
		clientKey = c.ClientIP()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generationTimeout)
	defer cancel()

	result, err := h.planner.Plan(ctx, clientKey, form)
	if err != nil {
		writePlanError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, result)
}

type generateReq struct {
	itinerary.ItineraryRequest
	UserID string `json:"userId"`
}

// GenerateItinerary handles POST /api/generate-itinerary. The body is a
// canonical request; no prompt interpretation or defaulting is applied.
func (h *ItineraryHandler) GenerateItinerary(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generationTimeout)
	defer cancel()

	resp, err := h.planner.Generate(ctx, req.UserID, req.ItineraryRequest)
	if err != nil {
		writePlanError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, resp)
}
