// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmind/internal/http/handlers"
	"tripmind/internal/http/middleware"
	"tripmind/internal/modules/itinerary"
)

func NewRouter(planner *itinerary.Service) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	itineraryHandler := handlers.NewItineraryHandler(planner)
	r.POST("/api/plan-trip", itineraryHandler.PlanTrip)
	r.POST("/api/generate-itinerary", itineraryHandler.GenerateItinerary)

	tripHandler := handlers.NewTripHandler(planner)
	r.POST("/api/validate-flight", tripHandler.ValidateFlight)
	r.POST("/api/save-trip", tripHandler.SaveTrip)
	r.GET("/api/user/preferences", tripHandler.UserPreferences)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	return r
}
