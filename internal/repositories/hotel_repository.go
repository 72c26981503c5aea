package repositories

import (
	"database/sql"

	"alfatih-backend/internal/domain"
	"alfatih-backend/internal/domain/models"
)

type HotelRepository struct {
	DB *sql.DB
}

func (r HotelRepository) List() ([]models.Hotel, error) {
	rows, err := r.DB.Query(`SELECT id, name, location, stars, created_at FROM hotels ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Hotel{}
	for rows.Next() {
		var h models.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Location, &h.Stars, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r HotelRepository) Create(h models.Hotel) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO hotels (name, location, stars) VALUES (?, ?, ?)`,
		h.Name, h.Location, h.Stars)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r HotelRepository) Update(h models.Hotel) error {
	res, err := r.DB.Exec(`UPDATE hotels SET name=?, location=?, stars=? WHERE id=?`,
		h.Name, h.Location, h.Stars, h.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "hotel"}
	}
	return nil
}

func (r HotelRepository) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM hotels WHERE id = ?`, id)
	return err
}
