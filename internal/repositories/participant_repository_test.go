package repositories

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"alfatih-backend/internal/domain/models"
)

func TestDeleteByIDsEmptyIssuesNoQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := ParticipantRepository{DB: db}

	if err := repo.DeleteByIDs(nil); err != nil {
		t.Fatalf("DeleteByIDs(nil): %v", err)
	}
	if err := repo.DeleteByIDs([]int64{}); err != nil {
		t.Fatalf("DeleteByIDs(empty): %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected queries: %v", err)
	}
}

func TestDeleteByIDsSingleStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM participants WHERE id IN").
		WithArgs(int64(4), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := ParticipantRepository{DB: db}
	if err := repo.DeleteByIDs([]int64{4, 9}); err != nil {
		t.Fatalf("DeleteByIDs: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpsertForOrderStampsAndFillsIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE participants").
		WithArgs(int64(7), "Siti Aminah", "3275010101010001", "C1234567", "0811111111", "Bandung", "Quad", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO participants").
		WithArgs(int64(7), "Ahmad Fauzi", "3275010101010002", "", "0822222222", "", "Quad").
		WillReturnResult(sqlmock.NewResult(15, 1))

	repo := ParticipantRepository{DB: db}
	roster := []models.Participant{
		{ID: 3, Name: "Siti Aminah", IdentityNumber: "3275010101010001", PassportNumber: "C1234567", Phone: "0811111111", Address: "Bandung", RoomType: "Quad"},
		{Name: "Ahmad Fauzi", IdentityNumber: "3275010101010002", Phone: "0822222222", RoomType: "Quad"},
	}

	out, err := repo.UpsertForOrder(7, roster)
	if err != nil {
		t.Fatalf("UpsertForOrder: %v", err)
	}

	if out[0].ID != 3 || out[0].OrderID != 7 {
		t.Fatalf("existing row not stamped: %+v", out[0])
	}
	if out[1].ID != 15 || out[1].OrderID != 7 {
		t.Fatalf("new row did not get generated id: %+v", out[1])
	}
	if roster[1].ID != 0 {
		t.Fatalf("input roster mutated: %+v", roster[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpsertForOrderStopsOnFirstFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	boom := errors.New("duplicate entry")
	mock.ExpectExec("INSERT INTO participants").WillReturnError(boom)

	repo := ParticipantRepository{DB: db}
	_, err = repo.UpsertForOrder(7, []models.Participant{
		{Name: "Ahmad Fauzi", RoomType: "Quad"},
		{Name: "Siti Aminah", RoomType: "Quad"},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want insert error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
