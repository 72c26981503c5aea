package models

import "time"

// SiteSettings is the single row of site-wide contact info. The row id is
// fixed; DefaultSiteSettings covers pre-fetch and fetch-failure states.
type SiteSettings struct {
	ID        int64     `json:"id"`
	Whatsapp  string    `json:"whatsapp"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Instagram string    `json:"instagram"`
	Tiktok    string    `json:"tiktok"`
	Facebook  string    `json:"facebook"`
	UpdatedAt time.Time `json:"updated_at"`
}

const SiteSettingsRowID = 1

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:        SiteSettingsRowID,
		Whatsapp:  "628XXXXXXXXXX",
		Phone:     "08XXXXXXXXXX",
		Email:     "info@alfatihduniawisata.com",
		Address:   "Jakarta, Indonesia",
		Instagram: "https://instagram.com/alfatihduniawisata",
		Tiktok:    "https://tiktok.com/@alfatihduniawisata",
		Facebook:  "https://facebook.com/alfatihduniawisata",
	}
}

// Private trip request statuses.
const (
	TripRequestPending = "pending"
	TripRequestHandled = "handled"
)

// PrivateTripRequest is a lead captured from the public planner.
type PrivateTripRequest struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Destination    string    `json:"destination"`
	Days           int       `json:"days"`
	Travelers      string    `json:"travelers"`
	Interests      []string  `json:"interests"`
	ItineraryDraft string    `json:"itinerary_draft"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
