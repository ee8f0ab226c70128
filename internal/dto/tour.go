package dto

// OccupancyAlert is one tour at or below the alert threshold
type OccupancyAlert struct {
	TourID       int64   `json:"tourId"`
	TourName     string  `json:"tourName"`
	DolulukOrani float64 `json:"dolulukOrani"`
	AlertLevel   string  `json:"alertLevel"`
}

// OccupancyAlertsResponse lists tours with occupancy <= 55, ascending
type OccupancyAlertsResponse struct {
	Alerts []OccupancyAlert `json:"alerts"`
}

// TourTypeStat is a per-type tour count; field names follow the dashboard's
// original column aliases
type TourTypeStat struct {
	TurTuru string `json:"tur_turu"`
	Toplam  int64  `json:"toplam"`
}

// TypeReservationCount is a per-type reservation count
type TypeReservationCount struct {
	TourType     string `json:"tourType"`
	Reservations int64  `json:"reservations"`
}

// PopularTypesResponse ranks tour types by reservation count
type PopularTypesResponse struct {
	Types []TypeReservationCount `json:"types"`
}

// TypeOccupancy is a per-type average occupancy
type TypeOccupancy struct {
	TourType     string  `json:"tourType"`
	AvgOccupancy float64 `json:"avgOccupancy"`
}

// OccupancyByTypeResponse ranks tour types by average occupancy
type OccupancyByTypeResponse struct {
	Types []TypeOccupancy `json:"types"`
}

// TypeLeadersResponse reports the top tour type by each metric separately
type TypeLeadersResponse struct {
	MostReserved     *TypeReservationCount `json:"mostReserved"`
	HighestOccupancy *TypeOccupancy        `json:"highestOccupancy"`
}

// DurationBandInsight aggregates reservations for one duration band
type DurationBandInsight struct {
	Band          string `json:"band"`
	Reservations  int64  `json:"reservations"`
	DistinctTours int64  `json:"distinctTours"`
	Weekday       int64  `json:"weekday"`
	Weekend       int64  `json:"weekend"`
}

// DurationInsightsResponse covers the three fixed duration bands; bands with
// no data still appear with zero counts
type DurationInsightsResponse struct {
	Bands []DurationBandInsight `json:"bands"`
	Total int64                 `json:"total"`
}

// TrendTypeCount is a per-tour-type count inside one month bucket
type TrendTypeCount struct {
	TourType string `json:"tourType"`
	Count    int64  `json:"count"`
}

// TrendMonth is one chronological month bucket
type TrendMonth struct {
	Year  int              `json:"year"`
	Month int              `json:"month"`
	Types []TrendTypeCount `json:"types"`
}

// MonthlyTrendsResponse is the last-3-months reservation trend series
type MonthlyTrendsResponse struct {
	Months []TrendMonth `json:"months"`
}

// TourDetailResponse is a single tour with its computed occupancy alongside
// the stored snapshot value
type TourDetailResponse struct {
	TourID            int64   `json:"tourId"`
	TourName          string  `json:"tourName"`
	TourType          string  `json:"tourType"`
	Capacity          int64   `json:"capacity"`
	Price             float64 `json:"price"`
	DurationDays      *int64  `json:"durationDays"`
	DolulukOrani      float64 `json:"dolulukOrani"`
	ComputedOccupancy float64 `json:"computedOccupancy"`
	Reservations      int64   `json:"reservations"`
}
