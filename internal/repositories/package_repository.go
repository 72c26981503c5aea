package repositories

import (
	"database/sql"
	"fmt"

	"alfatih-backend/internal/domain"
	"alfatih-backend/internal/domain/models"
)

// PackageRepository wraps DB access for the packages table.
type PackageRepository struct {
	DB *sql.DB
}

const packageColumns = `id, title, slug, category, duration, departure_date,
	flight_details, description, features, itinerary, included, not_included,
	airline_ids, hotel_ids, room_options, image_url, brochure_url,
	quotas, initial_quotas, available_rooms, initial_rooms, is_popular,
	created_at, updated_at`

func scanPackage(row interface{ Scan(...any) error }) (models.Package, error) {
	var (
		p                                          models.Package
		flightDetails, description                 sql.NullString
		features, itinerary, included, notIncluded sql.NullString
		airlineIDs, hotelIDs, roomOptions          sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Category, &p.Duration, &p.DepartureDate,
		&flightDetails, &description, &features, &itinerary, &included, &notIncluded,
		&airlineIDs, &hotelIDs, &roomOptions, &p.ImageURL, &p.BrochureURL,
		&p.Quotas, &p.InitialQuotas, &p.AvailableRooms, &p.InitialRooms, &p.IsPopular,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return p, err
	}
	p.FlightDetails = flightDetails.String
	p.Description = description.String
	scanJSON(features, &p.Features)
	scanJSON(itinerary, &p.Itinerary)
	scanJSON(included, &p.Included)
	scanJSON(notIncluded, &p.NotIncluded)
	scanJSON(airlineIDs, &p.AirlineIDs)
	scanJSON(hotelIDs, &p.HotelIDs)
	scanJSON(roomOptions, &p.RoomOptions)
	return p, nil
}

// List returns all packages, newest first (public catalog order).
func (r PackageRepository) List() ([]models.Package, error) {
	rows, err := r.DB.Query(`SELECT ` + packageColumns + ` FROM packages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Package{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PackageRepository) GetByID(id int64) (models.Package, error) {
	p, err := scanPackage(r.DB.QueryRow(`SELECT `+packageColumns+` FROM packages WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "package"}
	}
	return p, err
}

func (r PackageRepository) GetBySlug(slug string) (models.Package, error) {
	p, err := scanPackage(r.DB.QueryRow(`SELECT `+packageColumns+` FROM packages WHERE slug = ? LIMIT 1`, slug))
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "package"}
	}
	return p, err
}

func (r PackageRepository) Create(p models.Package) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO packages (title, slug, category, duration, departure_date,
			flight_details, description, features, itinerary, included, not_included,
			airline_ids, hotel_ids, room_options, image_url, brochure_url,
			quotas, initial_quotas, available_rooms, initial_rooms, is_popular)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Slug, p.Category, p.Duration, p.DepartureDate,
		p.FlightDetails, p.Description, jsonCol(p.Features), jsonCol(p.Itinerary),
		jsonCol(p.Included), jsonCol(p.NotIncluded), jsonCol(p.AirlineIDs),
		jsonCol(p.HotelIDs), jsonCol(p.RoomOptions), p.ImageURL, p.BrochureURL,
		p.Quotas, p.InitialQuotas, p.AvailableRooms, p.InitialRooms, p.IsPopular,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PackageRepository) Update(p models.Package) error {
	res, err := r.DB.Exec(`
		UPDATE packages SET title=?, slug=?, category=?, duration=?, departure_date=?,
			flight_details=?, description=?, features=?, itinerary=?, included=?,
			not_included=?, airline_ids=?, hotel_ids=?, room_options=?,
			image_url=?, brochure_url=?, quotas=?, initial_quotas=?,
			available_rooms=?, initial_rooms=?, is_popular=?
		WHERE id=?`,
		p.Title, p.Slug, p.Category, p.Duration, p.DepartureDate,
		p.FlightDetails, p.Description, jsonCol(p.Features), jsonCol(p.Itinerary),
		jsonCol(p.Included), jsonCol(p.NotIncluded), jsonCol(p.AirlineIDs),
		jsonCol(p.HotelIDs), jsonCol(p.RoomOptions), p.ImageURL, p.BrochureURL,
		p.Quotas, p.InitialQuotas, p.AvailableRooms, p.InitialRooms, p.IsPopular,
		p.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}

func (r PackageRepository) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM packages WHERE id = ?`, id)
	return err
}

func (r PackageRepository) Count() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM packages`).Scan(&n)
	return n, err
}

// DecrementInventory reserves pax quota and physical rooms atomically:
// the conditional WHERE makes concurrent over-booking impossible without
// any client-side locking. A delta may be negative (an edit shrank the
// booking), which releases capacity back, capped at the initial counts.
func (r PackageRepository) DecrementInventory(tx *sql.Tx, id int64, paxDelta, roomsDelta int) error {
	if paxDelta == 0 && roomsDelta == 0 {
		return nil
	}
	res, err := tx.Exec(`
		UPDATE packages
		SET quotas = LEAST(quotas - ?, initial_quotas),
		    available_rooms = LEAST(available_rooms - ?, initial_rooms)
		WHERE id = ? AND quotas >= ? AND available_rooms >= ?`,
		paxDelta, roomsDelta, id, paxDelta, roomsDelta,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ConflictError{
			Resource: "package",
			Msg:      fmt.Sprintf("inventory changed while saving (need %d pax, %d rooms)", paxDelta, roomsDelta),
		}
	}
	return nil
}
