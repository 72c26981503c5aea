package services

import (
	"database/sql"
	"fmt"
	"strconv"

	"alfatih-backend/internal/domain"
	"alfatih-backend/internal/domain/models"
	"alfatih-backend/internal/inventory"
	"alfatih-backend/internal/repositories"
	"alfatih-backend/internal/utils"
)

// OrderDraft is the staff-edited state of one order plus the roster
// reconciliation bookkeeping: live participants (ID set when previously
// persisted) and the IDs removed from the list since load.
type OrderDraft struct {
	ID            int64                      `json:"id"`
	PackageID     int64                      `json:"package_id"`
	CustomerName  string                     `json:"customer_name"`
	CustomerPhone string                     `json:"customer_phone"`
	CustomerEmail string                     `json:"customer_email"`
	RoomBreakdown []models.RoomBreakdownLine `json:"room_breakdown"`
	PaymentStatus string                     `json:"payment_status"`
	Notes         string                     `json:"notes"`

	Participants          []models.Participant `json:"participants"`
	DeletedParticipantIDs []int64              `json:"deleted_participant_ids"`
}

// OrderService runs the order save workflow: validate, persist the order
// row together with the inventory decrement in one transaction, then sync
// the roster. The roster part is not atomic with the order row; its steps
// are modeled explicitly so partial failure has a name.
type OrderService struct {
	DB           *sql.DB
	Packages     repositories.PackageRepository
	Orders       repositories.OrderRepository
	Participants repositories.ParticipantRepository
	RequestID    string
}

// rosterStep is one post-commit call in the save sequence. reportOnly
// steps log their failure and let the sequence continue.
type rosterStep struct {
	name       string
	reportOnly bool
	run        func() error
}

// Save validates the draft and persists it. On a PartialSyncError the
// order row is already saved and the returned order carries its ID so the
// client can retry just the roster.
func (s OrderService) Save(draft OrderDraft) (models.Order, error) {
	pkg, err := s.Packages.GetByID(draft.PackageID)
	if err != nil {
		return models.Order{}, err
	}

	var prev models.Order
	if draft.ID > 0 {
		prev, err = s.Orders.GetByID(draft.ID)
		if err != nil {
			return models.Order{}, err
		}
	}

	// The stored counts already hold this order's own pax and rooms, so
	// an edit on the same package only competes for capacity beyond what
	// it holds. A package switch faces the new package's raw counts.
	quotas, rooms := pkg.Quotas, pkg.AvailableRooms
	if prev.ID > 0 && prev.PackageID == draft.PackageID {
		quotas += prev.ParticipantCount
		rooms += prev.RoomCountBooked
	}

	totals := inventory.ComputeTotals(draft.RoomBreakdown)
	if err := inventory.Validate(totals, quotas, rooms); err != nil {
		return models.Order{}, err
	}

	if draft.PaymentStatus == "" {
		draft.PaymentStatus = models.PaymentDownPayment
	}

	order := models.Order{
		ID:               draft.ID,
		PackageID:        draft.PackageID,
		CustomerName:     utils.TrimOrEmpty(draft.CustomerName),
		CustomerPhone:    utils.TrimOrEmpty(draft.CustomerPhone),
		CustomerEmail:    utils.TrimOrEmpty(draft.CustomerEmail),
		RoomBreakdown:    inventory.BookedLines(draft.RoomBreakdown),
		RoomCountBooked:  totals.Rooms,
		ParticipantCount: totals.Pax,
		TotalPrice:       totals.Price,
		PaymentStatus:    draft.PaymentStatus,
		Notes:            draft.Notes,
	}

	orderID, err := s.persistWithInventory(order, prev, totals)
	if err != nil {
		return models.Order{}, err
	}
	order.ID = orderID
	utils.LogEvent(s.RequestID, "order", "persist", "order_id="+strconv.FormatInt(orderID, 10))

	if err := s.syncRoster(&order, draft); err != nil {
		return order, err
	}
	return order, nil
}

// persistWithInventory writes the order row and moves package counters in
// one transaction. The decrement is a conditional update, so two staff
// saving against the same package cannot jointly overshoot the quota.
func (s OrderService) persistWithInventory(order, prev models.Order, totals inventory.Totals) (int64, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	orderID := order.ID
	if orderID == 0 {
		orderID, err = s.Orders.Insert(tx, order)
		if err != nil {
			return 0, err
		}
	} else if err := s.Orders.Update(tx, order); err != nil {
		return 0, err
	}

	switch {
	case prev.ID == 0:
		err = s.Packages.DecrementInventory(tx, order.PackageID, totals.Pax, totals.Rooms)
	case prev.PackageID == order.PackageID:
		err = s.Packages.DecrementInventory(tx, order.PackageID,
			totals.Pax-prev.ParticipantCount, totals.Rooms-prev.RoomCountBooked)
	default:
		// Package switched: release the old hold, take the new one.
		err = s.Packages.DecrementInventory(tx, prev.PackageID,
			-prev.ParticipantCount, -prev.RoomCountBooked)
		if err == nil {
			err = s.Packages.DecrementInventory(tx, order.PackageID, totals.Pax, totals.Rooms)
		}
	}
	if err != nil {
		return 0, err
	}

	return orderID, tx.Commit()
}

// syncRoster runs the named post-commit steps: delete removed rows, then
// upsert the live list. Delete failure is reported but never blocks the
// upsert; upsert failure becomes a PartialSyncError.
func (s OrderService) syncRoster(order *models.Order, draft OrderDraft) error {
	steps := []rosterStep{
		{
			name:       "delete removed participants",
			reportOnly: true,
			run: func() error {
				return s.Participants.DeleteByIDs(draft.DeletedParticipantIDs)
			},
		},
		{
			name: "upsert roster",
			run: func() error {
				saved, err := s.Participants.UpsertForOrder(order.ID, draft.Participants)
				if err != nil {
					return err
				}
				order.Participants = saved
				return nil
			},
		},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			if step.reportOnly {
				utils.LogEvent(s.RequestID, "order", "roster_step_failed",
					fmt.Sprintf("order_id=%d step=%q err=%v", order.ID, step.name, err))
				continue
			}
			return domain.PartialSyncError{OrderID: order.ID, Step: step.name, Err: err}
		}
	}
	return nil
}

// Delete removes an order with its roster and releases the held
// inventory back to the package, capped at the initial counts.
func (s OrderService) Delete(id int64) error {
	order, err := s.Orders.GetByID(id)
	if err != nil {
		return err
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.Orders.Delete(tx, id); err != nil {
		return err
	}
	if err := s.Packages.DecrementInventory(tx, order.PackageID,
		-order.ParticipantCount, -order.RoomCountBooked); err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "order", "delete", "order_id="+strconv.FormatInt(id, 10))
	return tx.Commit()
}
