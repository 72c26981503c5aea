package handlers

import (
	"net/http"
	"time"

	"alfatih-backend/internal/config"
	"alfatih-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves health probes and the admin dashboard summary.
type SystemHandler struct {
	Env          config.Env
	Packages     *repositories.PackageRepository
	Orders       *repositories.OrderRepository
	Participants *repositories.ParticipantRepository
	PrivateTrips *repositories.PrivateTripRepository
}

// GET /api/health
func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// GET /api/db-check
// Pings through EnsureDB so a dropped pool reconnects instead of just
// reporting red.
func (h SystemHandler) DBCheck(c *gin.Context) {
	if err := config.EnsureDB(h.Env); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "database tidak terhubung", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"database": "connected"})
}

// GET /api/admin/dashboard
func (h SystemHandler) Dashboard(c *gin.Context) {
	packages, err := h.Packages.Count()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghitung paket", err)
		return
	}
	orders, err := h.Orders.Count()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghitung pesanan", err)
		return
	}
	participants, err := h.Participants.Count()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghitung jamaah", err)
		return
	}
	tripRequests, err := h.PrivateTrips.Count()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghitung permintaan trip", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_packages":     packages,
		"total_orders":       orders,
		"total_participants": participants,
		"trip_requests":      tripRequests,
	})
}
