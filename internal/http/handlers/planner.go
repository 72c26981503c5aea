package handlers

import (
	"net/http"

	"alfatih-backend/internal/http/middleware"
	"alfatih-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PlannerHandler exposes the itinerary generator to the public planner
// page. The service never returns an error; visitors always get text.
type PlannerHandler struct {
	Planner *services.PlannerService
}

// POST /api/planner/itinerary
func (h PlannerHandler) Generate(c *gin.Context) {
	var input services.PlannerInput
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Destination == "" {
		RespondError(c, http.StatusBadRequest, "destinasi wajib diisi", nil)
		return
	}
	if input.Days <= 0 {
		input.Days = 1
	}

	planner := *h.Planner
	planner.RequestID = middleware.GetRequestID(c)
	itinerary := planner.GenerateItinerary(c.Request.Context(), input)

	c.JSON(http.StatusOK, gin.H{"itinerary": itinerary})
}
