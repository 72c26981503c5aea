package models

import "time"

// Airline is a carrier shown on package detail pages.
type Airline struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Hotel is an accommodation shown on package detail pages.
type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"created_at"`
}
