package repositories

import (
	"database/sql"

	"alfatih-backend/internal/domain"
	"alfatih-backend/internal/domain/models"
)

// OrderRepository wraps DB access for the orders table. Writes that must
// move package inventory in the same transaction take a *sql.Tx.
type OrderRepository struct {
	DB *sql.DB
}

const orderColumns = `o.id, o.package_id, o.customer_name, o.customer_phone,
	o.customer_email, o.room_breakdown, o.room_count_booked,
	o.participant_count, o.total_price, o.payment_status, o.notes,
	o.created_at, o.updated_at`

func scanOrder(row interface{ Scan(...any) error }, withTitle bool) (models.Order, error) {
	var (
		o         models.Order
		breakdown sql.NullString
		notes     sql.NullString
		title     sql.NullString
	)
	dest := []any{
		&o.ID, &o.PackageID, &o.CustomerName, &o.CustomerPhone,
		&o.CustomerEmail, &breakdown, &o.RoomCountBooked,
		&o.ParticipantCount, &o.TotalPrice, &o.PaymentStatus, &notes,
		&o.CreatedAt, &o.UpdatedAt,
	}
	if withTitle {
		dest = append(dest, &title)
	}
	if err := row.Scan(dest...); err != nil {
		return o, err
	}
	o.Notes = notes.String
	o.PackageTitle = title.String
	scanJSON(breakdown, &o.RoomBreakdown)
	return o, nil
}

// List returns all orders newest first, with the package title joined and
// each order's roster embedded, mirroring the admin orders view.
func (r OrderRepository) List() ([]models.Order, error) {
	rows, err := r.DB.Query(`
		SELECT ` + orderColumns + `, p.title
		FROM orders o
		LEFT JOIN packages p ON p.id = o.package_id
		ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	parts := ParticipantRepository{DB: r.DB}
	for i := range out {
		roster, err := parts.ListByOrderID(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Participants = roster
	}
	return out, nil
}

func (r OrderRepository) GetByID(id int64) (models.Order, error) {
	o, err := scanOrder(r.DB.QueryRow(`
		SELECT `+orderColumns+`, p.title
		FROM orders o
		LEFT JOIN packages p ON p.id = o.package_id
		WHERE o.id = ?`, id), true)
	if err == sql.ErrNoRows {
		return o, domain.NotFoundError{Resource: "order"}
	}
	if err != nil {
		return o, err
	}
	o.Participants, err = ParticipantRepository{DB: r.DB}.ListByOrderID(o.ID)
	return o, err
}

func (r OrderRepository) Insert(tx *sql.Tx, o models.Order) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO orders (package_id, customer_name, customer_phone,
			customer_email, room_breakdown, room_count_booked,
			participant_count, total_price, payment_status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.PackageID, o.CustomerName, o.CustomerPhone, o.CustomerEmail,
		jsonCol(o.RoomBreakdown), o.RoomCountBooked, o.ParticipantCount,
		o.TotalPrice, o.PaymentStatus, o.Notes,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r OrderRepository) Update(tx *sql.Tx, o models.Order) error {
	res, err := tx.Exec(`
		UPDATE orders SET package_id=?, customer_name=?, customer_phone=?,
			customer_email=?, room_breakdown=?, room_count_booked=?,
			participant_count=?, total_price=?, payment_status=?, notes=?
		WHERE id=?`,
		o.PackageID, o.CustomerName, o.CustomerPhone, o.CustomerEmail,
		jsonCol(o.RoomBreakdown), o.RoomCountBooked, o.ParticipantCount,
		o.TotalPrice, o.PaymentStatus, o.Notes, o.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "order"}
	}
	return nil
}

// Delete removes the order and its roster inside tx; inventory restore is
// the service's job.
func (r OrderRepository) Delete(tx *sql.Tx, id int64) error {
	if _, err := tx.Exec(`DELETE FROM participants WHERE order_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "order"}
	}
	return nil
}

func (r OrderRepository) Count() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}
