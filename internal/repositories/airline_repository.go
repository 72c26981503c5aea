package repositories

import (
	"database/sql"

	"alfatih-backend/internal/db"
	"alfatih-backend/internal/domain"
	"alfatih-backend/internal/domain/models"
)

type AirlineRepository struct {
	DB *sql.DB
}

func (r AirlineRepository) List() ([]models.Airline, error) {
	rows, err := r.DB.Query(`SELECT id, name, logo_url, created_at FROM airlines ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Airline{}
	for rows.Next() {
		var (
			a    models.Airline
			logo sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Name, &logo, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.LogoURL = logo.String
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r AirlineRepository) Create(a models.Airline) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO airlines (name, logo_url) VALUES (?, ?)`,
		a.Name, db.NullIfEmpty(a.LogoURL))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r AirlineRepository) Update(a models.Airline) error {
	res, err := r.DB.Exec(`UPDATE airlines SET name=?, logo_url=? WHERE id=?`,
		a.Name, db.NullIfEmpty(a.LogoURL), a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "airline"}
	}
	return nil
}

func (r AirlineRepository) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM airlines WHERE id = ?`, id)
	return err
}
