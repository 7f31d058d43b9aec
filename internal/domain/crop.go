package domain

import "time"

// Crop represents a cultivated product whose daily market price is tracked.
type Crop struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Unit             string    `json:"unit"`
	GrowDurationDays int       `json:"grow_duration_days"`
	ImageURL         *string   `json:"image_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CropOverview is the catalog listing entry: the latest market price of a
// crop plus its day-over-day movement.
type CropOverview struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Price  string `json:"price"`
	Change string `json:"change"`
	Status string `json:"status"`
}

const (
	PriceStatusUp   = "up"
	PriceStatusDown = "down"
)
