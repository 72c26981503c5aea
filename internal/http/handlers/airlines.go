package handlers

import (
	"net/http"
	"strconv"

	"alfatih-backend/internal/domain/models"
	"alfatih-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type AirlineHandler struct {
	Airlines *repositories.AirlineRepository
}

// GET /api/airlines
func (h AirlineHandler) List(c *gin.Context) {
	airlines, err := h.Airlines.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil daftar maskapai", err)
		return
	}
	c.JSON(http.StatusOK, airlines)
}

// POST /api/admin/airlines
func (h AirlineHandler) Create(c *gin.Context) {
	var airline models.Airline
	if !BindJSONOrError(c, &airline) {
		return
	}
	if airline.Name == "" {
		RespondError(c, http.StatusBadRequest, "nama maskapai wajib diisi", nil)
		return
	}

	id, err := h.Airlines.Create(airline)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan maskapai", err)
		return
	}
	airline.ID = id
	c.JSON(http.StatusCreated, airline)
}

// PUT /api/admin/airlines/:id
func (h AirlineHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	var airline models.Airline
	if !BindJSONOrError(c, &airline) {
		return
	}
	airline.ID = id

	if err := h.Airlines.Update(airline); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}

// DELETE /api/admin/airlines/:id
func (h AirlineHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}
	if err := h.Airlines.Delete(id); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghapus maskapai", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "maskapai dihapus"})
}
