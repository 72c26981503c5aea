package models

import "time"

// Payment status values staff can set on an order.
const (
	PaymentDownPayment = "Down Payment"
	PaymentPaid        = "Paid"
	PaymentCancelled   = "Cancelled"
)

// RoomBreakdownLine is the booked quantity against one room option within
// a single order. Transient on the form side; persisted as a JSON column
// on the order row with only pax_booked > 0 lines kept.
type RoomBreakdownLine struct {
	RoomType    string `json:"room_type"`
	PricePerPax int64  `json:"price_per_pax"`
	Capacity    int    `json:"capacity"`
	PaxBooked   int    `json:"pax_booked"`
	RoomsBooked int    `json:"rooms_booked"`
}

// Order is a staff-entered booking against one package.
type Order struct {
	ID            int64  `json:"id"`
	PackageID     int64  `json:"package_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	RoomBreakdown    []RoomBreakdownLine `json:"room_breakdown"`
	RoomCountBooked  int                 `json:"room_count_booked"`
	ParticipantCount int                 `json:"participant_count"`
	TotalPrice       int64               `json:"total_price"`

	PaymentStatus string `json:"payment_status"`
	Notes         string `json:"notes"`

	// Joined for list views.
	PackageTitle string        `json:"package_title,omitempty"`
	Participants []Participant `json:"participants,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Participant is one named traveler on an order's roster. ID zero means
// not yet persisted; the upsert assigns one.
type Participant struct {
	ID             int64  `json:"id,omitempty"`
	OrderID        int64  `json:"order_id"`
	Name           string `json:"name"`
	IdentityNumber string `json:"identity_number"`
	PassportNumber string `json:"passport_number"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	RoomType       string `json:"room_type"`
}
