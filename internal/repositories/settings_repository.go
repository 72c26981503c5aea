package repositories

import (
	"database/sql"

	"alfatih-backend/internal/domain/models"
)

// SettingsRepository manages the single site_settings row.
type SettingsRepository struct {
	DB *sql.DB
}

// Get loads the settings row. When it is missing (fresh install) the
// fixed default set is returned so callers never see an empty config.
func (r SettingsRepository) Get() (models.SiteSettings, error) {
	var s models.SiteSettings
	err := r.DB.QueryRow(`
		SELECT id, whatsapp, phone, email, address, instagram, tiktok, facebook, updated_at
		FROM site_settings WHERE id = ?`, models.SiteSettingsRowID).
		Scan(&s.ID, &s.Whatsapp, &s.Phone, &s.Email, &s.Address,
			&s.Instagram, &s.Tiktok, &s.Facebook, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.DefaultSiteSettings(), nil
	}
	if err != nil {
		return models.DefaultSiteSettings(), err
	}
	return s, nil
}

// Update writes the row in place, creating it on first save.
func (r SettingsRepository) Update(s models.SiteSettings) error {
	_, err := r.DB.Exec(`
		INSERT INTO site_settings (id, whatsapp, phone, email, address, instagram, tiktok, facebook)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			whatsapp=VALUES(whatsapp), phone=VALUES(phone), email=VALUES(email),
			address=VALUES(address), instagram=VALUES(instagram),
			tiktok=VALUES(tiktok), facebook=VALUES(facebook)`,
		models.SiteSettingsRowID, s.Whatsapp, s.Phone, s.Email, s.Address,
		s.Instagram, s.Tiktok, s.Facebook,
	)
	return err
}
