// Package inventory computes and checks room-booking totals against a
// package's remaining capacity. Everything here is stateless and free of
// side effects; persistence is the calling workflow's job. The check is
// advisory: it compares against whatever counts are stored at call time,
// the atomic decrement happens later in the order save.
package inventory

import (
	"fmt"

	"alfatih-backend/internal/domain"
	"alfatih-backend/internal/domain/models"
)

var (
	ErrEmptyBooking  = domain.ValidationError{Field: "room_breakdown", Msg: "at least one pax must be booked"}
	ErrQuotaExceeded = domain.ValidationError{Field: "pax", Msg: "cannot exceed package quotas"}
	ErrRoomsExceeded = domain.ValidationError{Field: "rooms", Msg: "cannot exceed available physical rooms"}
)

// Fields accepted by UpdateLine.
const (
	FieldPaxBooked   = "pax_booked"
	FieldRoomsBooked = "rooms_booked"
)

// Totals aggregates one breakdown.
type Totals struct {
	Pax   int
	Rooms int
	Price int64
}

// BuildBreakdown produces one line per room option, carrying its name,
// price and capacity. When an existing breakdown for the same package is
// given (editing an order), booked counts are seeded from the matching
// line by room-type name; otherwise both start at zero.
func BuildBreakdown(opts []models.RoomOption, existing []models.RoomBreakdownLine) []models.RoomBreakdownLine {
	lines := make([]models.RoomBreakdownLine, 0, len(opts))
	for _, opt := range opts {
		line := models.RoomBreakdownLine{
			RoomType:    opt.Name,
			PricePerPax: opt.Price,
			Capacity:    opt.Capacity,
		}
		for _, prev := range existing {
			if prev.RoomType == opt.Name {
				line.PaxBooked = prev.PaxBooked
				line.RoomsBooked = prev.RoomsBooked
				break
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// UpdateLine returns a copy of lines with one booked count replaced.
// Bounds are not validated here; Validate does that against the package.
// Unknown fields and out-of-range indexes leave the breakdown unchanged.
func UpdateLine(lines []models.RoomBreakdownLine, index int, field string, value int) []models.RoomBreakdownLine {
	out := make([]models.RoomBreakdownLine, len(lines))
	copy(out, lines)
	if index < 0 || index >= len(out) {
		return out
	}
	switch field {
	case FieldPaxBooked:
		out[index].PaxBooked = value
	case FieldRoomsBooked:
		out[index].RoomsBooked = value
	}
	return out
}

// ComputeTotals sums pax, rooms and price over the breakdown. Counts come
// from free-text numeric fields, so anything non-positive counts as zero.
func ComputeTotals(lines []models.RoomBreakdownLine) Totals {
	var t Totals
	for _, line := range lines {
		pax := line.PaxBooked
		if pax < 0 {
			pax = 0
		}
		rooms := line.RoomsBooked
		if rooms < 0 {
			rooms = 0
		}
		price := line.PricePerPax
		if price < 0 {
			price = 0
		}
		t.Pax += pax
		t.Rooms += rooms
		t.Price += int64(pax) * price
	}
	return t
}

// Validate checks totals against a package's remaining counts. A passing
// result does not reserve anything.
func Validate(t Totals, quotas, availableRooms int) error {
	if t.Pax == 0 {
		return ErrEmptyBooking
	}
	if t.Pax > quotas {
		return fmt.Errorf("%w (available: %d)", ErrQuotaExceeded, quotas)
	}
	if t.Rooms > availableRooms {
		return fmt.Errorf("%w (available: %d)", ErrRoomsExceeded, availableRooms)
	}
	return nil
}

// BookedLines drops zero-pax lines, matching what gets persisted on the
// order row.
func BookedLines(lines []models.RoomBreakdownLine) []models.RoomBreakdownLine {
	out := make([]models.RoomBreakdownLine, 0, len(lines))
	for _, line := range lines {
		if line.PaxBooked > 0 {
			out = append(out, line)
		}
	}
	return out
}
