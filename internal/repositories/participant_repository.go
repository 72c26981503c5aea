package repositories

import (
	"database/sql"
	"strings"

	"alfatih-backend/internal/domain/models"
)

// ParticipantRepository reconciles an order's roster against the
// participants table. The save flow issues exactly one delete for the
// removed IDs and one upsert pass for the live list.
type ParticipantRepository struct {
	DB *sql.DB
}

func (r ParticipantRepository) ListByOrderID(orderID int64) ([]models.Participant, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, name, identity_number, passport_number, phone, address, room_type
		FROM participants
		WHERE order_id = ?
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Participant{}
	for rows.Next() {
		var (
			p       models.Participant
			address sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Name, &p.IdentityNumber,
			&p.PassportNumber, &p.Phone, &address, &p.RoomType); err != nil {
			return nil, err
		}
		p.Address = address.String
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteByIDs removes participants dropped from the roster since load.
// A nil/empty set is a no-op, no query issued.
func (r ParticipantRepository) DeleteByIDs(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	_, err := r.DB.Exec(`DELETE FROM participants WHERE id IN (`+placeholders+`)`, args...)
	return err
}

// UpsertForOrder writes the live roster stamped with the order ID: rows
// carrying an ID update in place, rows without one are inserted and get
// their generated ID filled back in.
func (r ParticipantRepository) UpsertForOrder(orderID int64, roster []models.Participant) ([]models.Participant, error) {
	out := make([]models.Participant, len(roster))
	copy(out, roster)

	for i := range out {
		out[i].OrderID = orderID
		if out[i].ID > 0 {
			_, err := r.DB.Exec(`
				UPDATE participants
				SET order_id=?, name=?, identity_number=?, passport_number=?, phone=?, address=?, room_type=?
				WHERE id=?`,
				orderID, out[i].Name, out[i].IdentityNumber, out[i].PassportNumber,
				out[i].Phone, out[i].Address, out[i].RoomType, out[i].ID,
			)
			if err != nil {
				return out, err
			}
			continue
		}

		res, err := r.DB.Exec(`
			INSERT INTO participants (order_id, name, identity_number, passport_number, phone, address, room_type)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			orderID, out[i].Name, out[i].IdentityNumber, out[i].PassportNumber,
			out[i].Phone, out[i].Address, out[i].RoomType,
		)
		if err != nil {
			return out, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return out, err
		}
		out[i].ID = id
	}
	return out, nil
}

func (r ParticipantRepository) Count() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM participants`).Scan(&n)
	return n, err
}
