package handlers

import (
	"fmt"
	"net/http"

	"alfatih-backend/internal/domain/models"
	"alfatih-backend/internal/http/middleware"
	"alfatih-backend/internal/repositories"
	"alfatih-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	Settings *repositories.SettingsRepository
}

// GET /api/settings
// Falls back to defaults when the row is missing so the public site
// always has contact info to render.
func (h SettingsHandler) Get(c *gin.Context) {
	settings, err := h.Settings.Get()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil pengaturan situs", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PUT /api/admin/settings
func (h SettingsHandler) Update(c *gin.Context) {
	var settings models.SiteSettings
	if !BindJSONOrError(c, &settings) {
		return
	}
	settings.ID = models.SiteSettingsRowID

	if err := h.Settings.Update(settings); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan pengaturan situs", err)
		return
	}

	msg := "site settings saved"
	if sess, ok := middleware.GetSession(c); ok {
		msg = fmt.Sprintf("site settings saved by user %d", sess.UserID)
	}
	utils.LogEvent(middleware.GetRequestID(c), "settings", "update", msg)
	c.JSON(http.StatusOK, settings)
}
