package handlers

import (
	"net/http"
	"strconv"

	"alfatih-backend/internal/domain/models"
	"alfatih-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	Hotels *repositories.HotelRepository
}

// GET /api/hotels
func (h HotelHandler) List(c *gin.Context) {
	hotels, err := h.Hotels.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil daftar hotel", err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// POST /api/admin/hotels
func (h HotelHandler) Create(c *gin.Context) {
	var hotel models.Hotel
	if !BindJSONOrError(c, &hotel) {
		return
	}
	if hotel.Name == "" {
		RespondError(c, http.StatusBadRequest, "nama hotel wajib diisi", nil)
		return
	}

	id, err := h.Hotels.Create(hotel)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan hotel", err)
		return
	}
	hotel.ID = id
	c.JSON(http.StatusCreated, hotel)
}

// PUT /api/admin/hotels/:id
func (h HotelHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	var hotel models.Hotel
	if !BindJSONOrError(c, &hotel) {
		return
	}
	hotel.ID = id

	if err := h.Hotels.Update(hotel); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// DELETE /api/admin/hotels/:id
func (h HotelHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}
	if err := h.Hotels.Delete(id); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghapus hotel", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hotel dihapus"})
}
