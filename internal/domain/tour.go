package domain

import "time"

// Tour is a read-only view of a row in turlar. This layer never mutates
// tours; they are owned by the upstream transactional system.
type Tour struct {
	ID            int64   `json:"tourId"`
	Name          string  `json:"tourName"`
	Type          string  `json:"tourType"`
	Capacity      int64   `json:"capacity"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	DurationDays  *int64  `json:"durationDays"`
	OccupancyRate float64 `json:"dolulukOrani"`
}

// Campaign is a read-only view of a row in kampanyalar.
type Campaign struct {
	ID           int64     `json:"campaignId"`
	Name         string    `json:"campaignName"`
	DiscountRate float64   `json:"discountRate"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
}
