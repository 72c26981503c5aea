package repositories

import (
	"database/sql"

	"alfatih-backend/internal/domain"
	"alfatih-backend/internal/domain/models"
)

// PrivateTripRepository stores planner leads.
type PrivateTripRepository struct {
	DB *sql.DB
}

func (r PrivateTripRepository) List() ([]models.PrivateTripRequest, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, phone, destination, days, travelers, interests, itinerary_draft, status, created_at
		FROM private_trip_requests
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PrivateTripRequest{}
	for rows.Next() {
		var (
			req       models.PrivateTripRequest
			interests sql.NullString
			draft     sql.NullString
		)
		if err := rows.Scan(&req.ID, &req.Name, &req.Phone, &req.Destination,
			&req.Days, &req.Travelers, &interests, &draft, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		scanJSON(interests, &req.Interests)
		req.ItineraryDraft = draft.String
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r PrivateTripRepository) Create(req models.PrivateTripRequest) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO private_trip_requests (name, phone, destination, days, travelers, interests, itinerary_draft, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		req.Name, req.Phone, req.Destination, req.Days, req.Travelers,
		jsonCol(req.Interests), req.ItineraryDraft, models.TripRequestPending,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PrivateTripRepository) UpdateStatus(id int64, status string) error {
	res, err := r.DB.Exec(`UPDATE private_trip_requests SET status=? WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "private trip request"}
	}
	return nil
}

func (r PrivateTripRepository) Count() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM private_trip_requests`).Scan(&n)
	return n, err
}
