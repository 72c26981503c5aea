package models

import (
	"encoding/json"
	"fmt"
	"time"

	"alfatih-backend/internal/utils"
)

// RoomOption is one sellable room configuration on a package, priced per
// pax. OriginalPrice carries the strike-through price when a promo is on.
type RoomOption struct {
	Name          string `json:"name"`
	Capacity      int    `json:"capacity"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"original_price,omitempty"`
}

// UnmarshalJSON accepts prices as plain numbers or as formatted rupiah
// text, since the admin form price fields are free text.
func (o *RoomOption) UnmarshalJSON(data []byte) error {
	type roomOption RoomOption
	aux := struct {
		*roomOption
		Price         json.RawMessage `json:"price"`
		OriginalPrice json.RawMessage `json:"original_price"`
	}{roomOption: (*roomOption)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if o.Price, err = priceValue(aux.Price); err != nil {
		return fmt.Errorf("room option price: %w", err)
	}
	if o.OriginalPrice, err = priceValue(aux.OriginalPrice); err != nil {
		return fmt.Errorf("room option original_price: %w", err)
	}
	return nil
}

func priceValue(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("price must be a number or rupiah text")
	}
	return utils.ParseRupiahToInt(s)
}

// ItineraryDay is one day of a package itinerary.
type ItineraryDay struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

// Package is a sellable tour offering. Quotas count remaining passenger
// capacity, AvailableRooms remaining physical rooms; the Initial*
// counterparts keep the starting values so sold counts can be derived.
type Package struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Category      string         `json:"category"`
	Duration      string         `json:"duration"`
	DepartureDate string         `json:"departure_date"`
	FlightDetails string         `json:"flight_details"`
	Description   string         `json:"description"`
	Features      []string       `json:"features"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	Included      []string       `json:"included"`
	NotIncluded   []string       `json:"not_included"`
	AirlineIDs    []int64        `json:"airline_ids"`
	HotelIDs      []int64        `json:"hotel_ids"`
	RoomOptions   []RoomOption   `json:"room_options"`

	ImageURL    string `json:"image_url"`
	BrochureURL string `json:"brochure_url"`

	Quotas         int `json:"quotas"`
	InitialQuotas  int `json:"initial_quotas"`
	AvailableRooms int `json:"available_rooms"`
	InitialRooms   int `json:"initial_rooms"`

	IsPopular bool      `json:"is_popular"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
