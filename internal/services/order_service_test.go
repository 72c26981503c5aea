package services

import (
	"errors"
	"testing"
	"time"

	"alfatih-backend/internal/domain"
	"alfatih-backend/internal/domain/models"
	"alfatih-backend/internal/inventory"
	"alfatih-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newOrderService(t *testing.T) (OrderService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return OrderService{
		DB:           db,
		Packages:     repositories.PackageRepository{DB: db},
		Orders:       repositories.OrderRepository{DB: db},
		Participants: repositories.ParticipantRepository{DB: db},
	}, mock
}

func packageRowsID(id int64, quotas, rooms int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "title", "slug", "category", "duration", "departure_date",
		"flight_details", "description", "features", "itinerary", "included",
		"not_included", "airline_ids", "hotel_ids", "room_options",
		"image_url", "brochure_url", "quotas", "initial_quotas",
		"available_rooms", "initial_rooms", "is_popular", "created_at", "updated_at",
	}).AddRow(
		id, "Umrah Hemat", "umrah-hemat", "Umrah", "9 Days", "2026-01-10",
		nil, nil, "[]", "[]", "[]", "[]", "[]", "[]",
		`[{"name":"Quad","capacity":4,"price":30000000}]`,
		"", "", quotas, 100, rooms, 50, false, now, now,
	)
}

func packageRows(quotas, rooms int) *sqlmock.Rows {
	return packageRowsID(1, quotas, rooms)
}

func orderRows(id, packageID int64, pax, rooms int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "package_id", "customer_name", "customer_phone",
		"customer_email", "room_breakdown", "room_count_booked",
		"participant_count", "total_price", "payment_status", "notes",
		"created_at", "updated_at", "title",
	}).AddRow(id, packageID, "Budi", "0812", "", "[]", rooms, pax,
		int64(pax)*30000000, models.PaymentDownPayment, nil, now, now, "Umrah Hemat")
}

func rosterRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "order_id", "name", "identity_number", "passport_number",
		"phone", "address", "room_type",
	})
}

func quadDraft(pax, rooms int) OrderDraft {
	return OrderDraft{
		PackageID:     1,
		CustomerName:  "Budi",
		CustomerPhone: "0812",
		PaymentStatus: models.PaymentDownPayment,
		RoomBreakdown: []models.RoomBreakdownLine{
			{RoomType: "Quad", PricePerPax: 30000000, Capacity: 4, PaxBooked: pax, RoomsBooked: rooms},
		},
	}
}

func TestSaveNewOrderSyncsRoster(t *testing.T) {
	svc, mock := newOrderService(t)

	mock.ExpectQuery("FROM packages WHERE id").WithArgs(int64(1)).
		WillReturnRows(packageRows(10, 5))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE packages").
		WithArgs(10, 3, int64(1), 10, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// exactly one delete for {2}, then the upsert pass
	mock.ExpectExec("DELETE FROM participants WHERE id IN").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE participants").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO participants").
		WillReturnResult(sqlmock.NewResult(9, 1))

	draft := quadDraft(10, 3)
	draft.Participants = []models.Participant{
		{ID: 1, Name: "Aisyah (edited)", RoomType: "Quad"},
		{Name: "Citra", RoomType: "Quad"},
	}
	draft.DeletedParticipantIDs = []int64{2}

	order, err := svc.Save(draft)
	if err != nil {
		t.Fatalf("save error: %v", err)
	}
	if order.ID != 7 {
		t.Fatalf("order id = %d, want 7", order.ID)
	}
	if order.TotalPrice != 300000000 {
		t.Fatalf("total price = %d", order.TotalPrice)
	}
	if len(order.Participants) != 2 {
		t.Fatalf("participants = %d, want 2", len(order.Participants))
	}
	if order.Participants[0].ID != 1 {
		t.Fatalf("edited participant lost its id: %d", order.Participants[0].ID)
	}
	if order.Participants[1].ID != 9 {
		t.Fatalf("new participant did not receive generated id: %d", order.Participants[1].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveReportsPartialSyncWhenUpsertFails(t *testing.T) {
	svc, mock := newOrderService(t)

	mock.ExpectQuery("FROM packages WHERE id").WithArgs(int64(1)).
		WillReturnRows(packageRows(10, 5))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE packages").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectExec("INSERT INTO participants").
		WillReturnError(errors.New("connection reset"))

	draft := quadDraft(10, 3)
	draft.Participants = []models.Participant{{Name: "Citra", RoomType: "Quad"}}

	order, err := svc.Save(draft)
	if !domain.IsPartialSync(err) {
		t.Fatalf("expected PartialSyncError, got %v", err)
	}
	if order.ID != 7 {
		t.Fatalf("order id must survive partial sync, got %d", order.ID)
	}

	var partial domain.PartialSyncError
	errors.As(err, &partial)
	if partial.Step != "upsert roster" {
		t.Fatalf("failed step = %q", partial.Step)
	}
}

func TestSaveDeleteStepFailureDoesNotBlockUpsert(t *testing.T) {
	svc, mock := newOrderService(t)

	mock.ExpectQuery("FROM packages WHERE id").WithArgs(int64(1)).
		WillReturnRows(packageRows(10, 5))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE packages").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectExec("DELETE FROM participants WHERE id IN").
		WillReturnError(errors.New("timeout"))
	mock.ExpectExec("INSERT INTO participants").
		WillReturnResult(sqlmock.NewResult(4, 1))

	draft := quadDraft(10, 3)
	draft.Participants = []models.Participant{{Name: "Citra", RoomType: "Quad"}}
	draft.DeletedParticipantIDs = []int64{2}

	if _, err := svc.Save(draft); err != nil {
		t.Fatalf("delete step failure must be report-only, got %v", err)
	}
}

func TestSaveRejectsBeforeAnyWrite(t *testing.T) {
	svc, mock := newOrderService(t)

	mock.ExpectQuery("FROM packages WHERE id").WithArgs(int64(1)).
		WillReturnRows(packageRows(10, 5))

	_, err := svc.Save(quadDraft(11, 3))
	if !errors.Is(err, inventory.ErrQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no write may happen on validation failure: %v", err)
	}
}

func TestSaveEmptyBookingRejected(t *testing.T) {
	svc, mock := newOrderService(t)

	mock.ExpectQuery("FROM packages WHERE id").WithArgs(int64(1)).
		WillReturnRows(packageRows(10, 5))

	_, err := svc.Save(quadDraft(0, 3))
	if !errors.Is(err, inventory.ErrEmptyBooking) {
		t.Fatalf("expected empty-booking error, got %v", err)
	}
}

func TestSaveRollsBackWhenInventoryRacedAway(t *testing.T) {
	svc, mock := newOrderService(t)

	// Validation passes against the stale read, the conditional update
	// then finds the quota gone.
	mock.ExpectQuery("FROM packages WHERE id").WithArgs(int64(1)).
		WillReturnRows(packageRows(10, 5))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE packages").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Save(quadDraft(10, 3))
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveUnchangedEditOnSoldOutPackage(t *testing.T) {
	svc, mock := newOrderService(t)

	// Order 3 holds all 10 pax; remaining quotas are 0. Re-saving it
	// unchanged must still pass, and a zero delta issues no decrement.
	mock.ExpectQuery("FROM packages WHERE id").WithArgs(int64(1)).
		WillReturnRows(packageRows(0, 2))
	mock.ExpectQuery("FROM orders o").WithArgs(int64(3)).
		WillReturnRows(orderRows(3, 1, 10, 3))
	mock.ExpectQuery("FROM participants").WithArgs(int64(3)).
		WillReturnRows(rosterRows())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	draft := quadDraft(10, 3)
	draft.ID = 3

	order, err := svc.Save(draft)
	if err != nil {
		t.Fatalf("unchanged edit must save: %v", err)
	}
	if order.ID != 3 {
		t.Fatalf("order id = %d, want 3", order.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveShrinkingEditReleasesCapacity(t *testing.T) {
	svc, mock := newOrderService(t)

	mock.ExpectQuery("FROM packages WHERE id").WithArgs(int64(1)).
		WillReturnRows(packageRows(0, 2))
	mock.ExpectQuery("FROM orders o").WithArgs(int64(3)).
		WillReturnRows(orderRows(3, 1, 10, 3))
	mock.ExpectQuery("FROM participants").WithArgs(int64(3)).
		WillReturnRows(rosterRows())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE packages").
		WithArgs(-4, -1, int64(1), -4, -1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	draft := quadDraft(6, 2)
	draft.ID = 3

	if _, err := svc.Save(draft); err != nil {
		t.Fatalf("shrinking edit must save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSavePackageSwitchRestoresOldHold(t *testing.T) {
	svc, mock := newOrderService(t)

	mock.ExpectQuery("FROM packages WHERE id").WithArgs(int64(2)).
		WillReturnRows(packageRowsID(2, 10, 5))
	mock.ExpectQuery("FROM orders o").WithArgs(int64(3)).
		WillReturnRows(orderRows(3, 1, 4, 2))
	mock.ExpectQuery("FROM participants").WithArgs(int64(3)).
		WillReturnRows(rosterRows())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Old package gets its 4 pax and 2 rooms back before the new one is
	// charged.
	mock.ExpectExec("UPDATE packages").
		WithArgs(-4, -2, int64(1), -4, -2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE packages").
		WithArgs(8, 2, int64(2), 8, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	draft := quadDraft(8, 2)
	draft.ID = 3
	draft.PackageID = 2

	if _, err := svc.Save(draft); err != nil {
		t.Fatalf("package switch must save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteRestoresInventory(t *testing.T) {
	svc, mock := newOrderService(t)

	now := time.Now()
	mock.ExpectQuery("FROM orders o").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "package_id", "customer_name", "customer_phone",
			"customer_email", "room_breakdown", "room_count_booked",
			"participant_count", "total_price", "payment_status", "notes",
			"created_at", "updated_at", "title",
		}).AddRow(3, 1, "Budi", "0812", "", "[]", 2, 4, 120000000,
			models.PaymentPaid, nil, now, now, "Umrah Hemat"))
	mock.ExpectQuery("FROM participants").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "order_id", "name", "identity_number", "passport_number",
			"phone", "address", "room_type",
		}))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM participants WHERE order_id").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM orders").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE packages").
		WithArgs(-4, -2, int64(1), -4, -2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.Delete(3); err != nil {
		t.Fatalf("delete error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
