package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"alfatih-backend/internal/http/middleware"
	"alfatih-backend/internal/repositories"
	"alfatih-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the admin order desk. Saves go through the order
// service so inventory and roster bookkeeping happen in one place.
type OrderHandler struct {
	DB           *sql.DB
	Packages     *repositories.PackageRepository
	Orders       *repositories.OrderRepository
	Participants *repositories.ParticipantRepository
}

func (h OrderHandler) service(c *gin.Context) services.OrderService {
	return services.OrderService{
		DB:           h.DB,
		Packages:     *h.Packages,
		Orders:       *h.Orders,
		Participants: *h.Participants,
		RequestID:    middleware.GetRequestID(c),
	}
}

// GET /api/admin/orders
func (h OrderHandler) List(c *gin.Context) {
	orders, err := h.Orders.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil daftar pesanan", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/admin/orders/:id
func (h OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}
	order, err := h.Orders.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// POST /api/admin/orders
// Also handles edits: a draft with a nonzero id updates in place. On a
// partial roster sync the saved order still comes back in the error
// details so the client can retry just the roster.
func (h OrderHandler) Save(c *gin.Context) {
	var draft services.OrderDraft
	if !BindJSONOrError(c, &draft) {
		return
	}

	order, err := h.service(c).Save(draft)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	status := http.StatusOK
	if draft.ID == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, order)
}

// PUT /api/admin/orders/:id
// The path ID wins over whatever the body carries.
func (h OrderHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	var draft services.OrderDraft
	if !BindJSONOrError(c, &draft) {
		return
	}
	draft.ID = id

	order, err := h.service(c).Save(draft)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DELETE /api/admin/orders/:id
func (h OrderHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}
	if err := h.service(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pesanan dihapus"})
}

// GET /api/admin/orders/:id/participants
func (h OrderHandler) ListParticipants(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}
	roster, err := h.Participants.ListByOrderID(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil daftar jamaah", err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

// GET /api/admin/orders/:id/invoice
func (h OrderHandler) Invoice(c *gin.Context) {
	h.servePDF(c, func(docs services.DocsService, id int64) ([]byte, string, error) {
		return docs.GenerateInvoice(id)
	})
}

// GET /api/admin/orders/:id/manifest
func (h OrderHandler) Manifest(c *gin.Context) {
	h.servePDF(c, func(docs services.DocsService, id int64) ([]byte, string, error) {
		return docs.GenerateManifest(id)
	})
}

func (h OrderHandler) servePDF(c *gin.Context, generate func(services.DocsService, int64) ([]byte, string, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	docs := services.DocsService{
		Orders:    *h.Orders,
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := generate(docs, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
