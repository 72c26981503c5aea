package services

import (
	"bytes"
	"testing"

	"alfatih-backend/internal/domain/models"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:           12,
		PackageTitle: "Umrah Hemat",
		CustomerName: "Budi Santoso",
		RoomBreakdown: []models.RoomBreakdownLine{
			{RoomType: "Quad", PricePerPax: 30000000, PaxBooked: 4, RoomsBooked: 1},
		},
		ParticipantCount: 4,
		RoomCountBooked:  1,
		TotalPrice:       120000000,
		PaymentStatus:    models.PaymentDownPayment,
		Participants: []models.Participant{
			{Name: "Budi Santoso", RoomType: "Quad", Phone: "0812"},
			{Name: "Siti Rahma", RoomType: "Quad"},
		},
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (models.Order, error) {
			if id != 12 {
				t.Fatalf("unexpected order id %d", id)
			}
			return sampleOrder(), nil
		},
	}

	data, filename, err := svc.GenerateInvoice(12)
	if err != nil {
		t.Fatalf("invoice error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if filename != "INVOICE_12_Budi_Santoso.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestGenerateManifestPDF(t *testing.T) {
	svc := DocsService{
		Loader: func(int64) (models.Order, error) { return sampleOrder(), nil },
	}

	data, filename, err := svc.GenerateManifest(12)
	if err != nil {
		t.Fatalf("manifest error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if filename != "MANIFEST_12.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}
