package handlers

import (
	"net/http"
	"strconv"

	"alfatih-backend/internal/domain/models"
	"alfatih-backend/internal/http/middleware"
	"alfatih-backend/internal/repositories"
	"alfatih-backend/internal/services"
	"alfatih-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// PrivateTripHandler captures planner leads from the public site and
// serves the admin follow-up list.
type PrivateTripHandler struct {
	PrivateTrips *repositories.PrivateTripRepository
	Planner      *services.PlannerService
}

type privateTripRequest struct {
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	Destination    string   `json:"destination"`
	Days           int      `json:"days"`
	Travelers      string   `json:"travelers"`
	Interests      []string `json:"interests"`
	ItineraryDraft string   `json:"itinerary_draft"`
}

// POST /api/private-trips
// When the visitor has not generated a draft yet, one is drawn up on the
// spot so the sales team never receives an empty lead.
func (h PrivateTripHandler) Create(c *gin.Context) {
	var req privateTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Name = utils.NormalizeSpace(req.Name)
	req.Phone = utils.TrimOrEmpty(req.Phone)
	if req.Name == "" || req.Phone == "" {
		RespondError(c, http.StatusBadRequest, "nama dan nomor telepon wajib diisi", nil)
		return
	}
	if req.Destination == "" {
		RespondError(c, http.StatusBadRequest, "destinasi wajib diisi", nil)
		return
	}

	draft := req.ItineraryDraft
	if draft == "" {
		planner := *h.Planner
		planner.RequestID = middleware.GetRequestID(c)
		draft = planner.GenerateItinerary(c.Request.Context(), services.PlannerInput{
			Destination: req.Destination,
			Days:        req.Days,
			Travelers:   req.Travelers,
			Interests:   req.Interests,
		})
	}

	lead := models.PrivateTripRequest{
		Name:           req.Name,
		Phone:          req.Phone,
		Destination:    req.Destination,
		Days:           req.Days,
		Travelers:      req.Travelers,
		Interests:      req.Interests,
		ItineraryDraft: draft,
		Status:         models.TripRequestPending,
	}
	id, err := h.PrivateTrips.Create(lead)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan permintaan trip", err)
		return
	}
	lead.ID = id

	utils.LogEvent(middleware.GetRequestID(c), "private_trips", "create", lead.Destination)
	c.JSON(http.StatusCreated, lead)
}

// GET /api/admin/private-trips
func (h PrivateTripHandler) List(c *gin.Context) {
	leads, err := h.PrivateTrips.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil permintaan trip", err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

type tripStatusRequest struct {
	Status string `json:"status"`
}

// PATCH /api/admin/private-trips/:id/status
func (h PrivateTripHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	var req tripStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Status != models.TripRequestPending && req.Status != models.TripRequestHandled {
		RespondError(c, http.StatusBadRequest, "status tidak dikenal", nil)
		return
	}

	if err := h.PrivateTrips.UpdateStatus(id, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}
