// README: Trip persistence handlers (save, preferences, flight validation).
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripmind/internal/modules/itinerary"
)

type TripHandler struct {
	planner *itinerary.Service
}

func NewTripHandler(planner *itinerary.Service) *TripHandler {
	return &TripHandler{planner: planner}
}

type saveTripReq struct {
	UserID    string                       `json:"userId"`
	Itinerary *itinerary.ItineraryResponse `json:"itinerary"`
}

// SaveTrip handles POST /api/save-trip.
func (h *TripHandler) SaveTrip(c *gin.Context) {
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || req.Itinerary == nil {
		writeError(c, http.StatusBadRequest, "missing userId or itinerary")
		return
	}

	id, err := h.planner.SaveTrip(c.Request.Context(), req.UserID, req.Itinerary)
	if err != nil {
		writePlanError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"tripId": id})
}

// UserPreferences handles GET /api/user/preferences?userId=...
func (h *TripHandler) UserPreferences(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing userId")
		return
	}

	prefs, err := h.planner.UserPreferences(c.Request.Context(), userID)
	if err != nil {
		writePlanError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"userId": userID, "preferences": prefs})
}

type flightReq struct {
	FlightNumber string `json:"flightNumber"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
}

// ValidateFlight handles POST /api/validate-flight.
// TODO: integrate a real flight availability API; every well-formed flight
// currently validates.
func (h *TripHandler) ValidateFlight(c *gin.Context) {
	var req flightReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.FlightNumber) == "" {
		writeError(c, http.StatusBadRequest, "missing flightNumber")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{
		"flightNumber": req.FlightNumber,
		"valid":        true,
	})
}
