package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"alfatih-backend/internal/domain/models"
	"alfatih-backend/internal/repositories"
	"alfatih-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders order paperwork: the customer invoice and the
// participant manifest handed to field staff.
type DocsService struct {
	Orders    repositories.OrderRepository
	RequestID string
	Loader    func(int64) (models.Order, error)
}

func (s DocsService) loadOrder(orderID int64) (models.Order, error) {
	if s.Loader != nil {
		return s.Loader(orderID)
	}
	return s.Orders.GetByID(orderID)
}

func (s DocsService) GenerateInvoice(orderID int64) ([]byte, string, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("order_id=%d", orderID))
	return buildInvoicePDF(order)
}

func (s DocsService) GenerateManifest(orderID int64) ([]byte, string, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_manifest", fmt.Sprintf("order_id=%d", orderID))
	return buildManifestPDF(order)
}

func buildInvoicePDF(o models.Order) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("No Invoice     : INV-%d", o.ID),
		fmt.Sprintf("Tanggal        : %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("Paket          : %s", safe(o.PackageTitle, "-")),
		fmt.Sprintf("Nama Pemesan   : %s", safe(o.CustomerName, "-")),
		fmt.Sprintf("No HP          : %s", safe(o.CustomerPhone, "-")),
		fmt.Sprintf("Email          : %s", safe(o.CustomerEmail, "-")),
		fmt.Sprintf("Status Bayar   : %s", safe(o.PaymentStatus, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(70, 8, "Tipe Kamar")
	pdf.Cell(30, 8, "Pax")
	pdf.Cell(30, 8, "Kamar")
	pdf.Cell(0, 8, "Subtotal")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range o.RoomBreakdown {
		pdf.Cell(70, 7, line.RoomType)
		pdf.Cell(30, 7, fmt.Sprintf("%d", line.PaxBooked))
		pdf.Cell(30, 7, fmt.Sprintf("%d", line.RoomsBooked))
		pdf.Cell(0, 7, utils.FormatRupiah(int64(line.PaxBooked)*line.PricePerPax))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(130, 8, "Total")
	pdf.Cell(0, 8, utils.FormatRupiah(o.TotalPrice))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", o.ID, safeFilenamePart(o.CustomerName))
	return buf.Bytes(), filename, nil
}

func buildManifestPDF(o models.Order) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Manifest Jamaah", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("MANIFEST JAMAAH - ORDER #%d", o.ID))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Paket: %s | Pemesan: %s | Pax: %d",
		safe(o.PackageTitle, "-"), safe(o.CustomerName, "-"), o.ParticipantCount))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	headers := []struct {
		label string
		width float64
	}{
		{"No", 10}, {"Nama", 60}, {"No Identitas", 45}, {"No Paspor", 45},
		{"No HP", 35}, {"Tipe Kamar", 30}, {"Alamat", 0},
	}
	for _, h := range headers {
		pdf.Cell(h.width, 8, h.label)
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for i, p := range o.Participants {
		pdf.Cell(10, 7, fmt.Sprintf("%d", i+1))
		pdf.Cell(60, 7, safe(p.Name, "-"))
		pdf.Cell(45, 7, safe(p.IdentityNumber, "-"))
		pdf.Cell(45, 7, safe(p.PassportNumber, "-"))
		pdf.Cell(35, 7, safe(p.Phone, "-"))
		pdf.Cell(30, 7, safe(p.RoomType, "-"))
		pdf.Cell(0, 7, safe(p.Address, "-"))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("MANIFEST_%d.pdf", o.ID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "order"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(s)
}
