package domain

// Aggregate row types returned by the report repositories. Each one maps a
// single GROUP BY row; the derivation services fold them into report payloads.

// OverviewCounts holds the headline entity counts
type OverviewCounts struct {
	Customers          int64
	Reservations       int64
	Tours              int64
	SurveyParticipants int64
}

// WindowStats aggregates reservations inside one time window
type WindowStats struct {
	Count         int64
	TotalProfit   float64
	CampaignCount int64
}

// TourProfit is a tour with its summed reservation profit
type TourProfit struct {
	TourID      int64
	TourName    string
	TotalProfit float64
}

// TourOccupancy is a tour with an occupancy figure (stored or averaged)
type TourOccupancy struct {
	TourID    int64
	TourName  string
	Occupancy float64
}

// TypeCount is a per-tour-type count (tours or reservations)
type TypeCount struct {
	TourType string
	Count    int64
}

// TypeOccupancy is a per-tour-type average occupancy
type TypeOccupancy struct {
	TourType     string
	AvgOccupancy float64
}

// DurationStats aggregates reservations for one exact duration value.
// Tours sharing a duration are disjoint across durations, so per-band
// distinct-tour counts can be summed from these rows.
type DurationStats struct {
	DurationDays  int64
	Reservations  int64
	DistinctTours int64
	Weekend       int64
}

// TrendPoint is a (year, month, tour type) reservation count
type TrendPoint struct {
	Year     int
	Month    int
	TourType string
	Count    int64
}

// CampaignShare aggregates campaign attachment over all reservations
type CampaignShare struct {
	TotalReservations    int64
	CampaignReservations int64
	CampaignProfit       float64
}

// ComparisonSide holds the aggregates for one side of the campaign vs
// non-campaign comparison
type ComparisonSide struct {
	Reservations int64
	TotalProfit  float64
	AvgProfit    float64
	AvgOccupancy float64
}

// CampaignROI is a campaign with the aggregates feeding its ROI figure
type CampaignROI struct {
	CampaignID     int64
	CampaignName   string
	DiscountRate   float64
	TotalProfit    float64
	DiscountAmount float64
}

// CampaignTourWindow counts a tour's reservations strictly before a
// campaign's start and strictly after its end
type CampaignTourWindow struct {
	CampaignID   int64
	CampaignName string
	TourID       int64
	TourName     string
	Capacity     int64
	BeforeCount  int64
	AfterCount   int64
}

// SimReservation carries the per-reservation inputs of a what-if
// recomputation: unit price and cost come from the tour, profit is the
// stored value
type SimReservation struct {
	ReservationID int64
	Price         float64
	Cost          float64
	PartySize     int64
	Profit        float64
}

// MatrixCell is one campaign x tour-type aggregate row
type MatrixCell struct {
	CampaignName string
	TourType     string
	Reservations int64
	TotalProfit  float64
	AvgProfit    float64
	AvgOccupancy float64
}

// AgeCount is a per-exact-age customer count; banding happens in the service
type AgeCount struct {
	Age   int64
	Count int64
}

// AgeTypeCount is a per (exact age, tour type) reservation count
type AgeTypeCount struct {
	Age      int64
	TourType string
	Count    int64
}

// AgeCampaignCount splits one exact age's reservations by campaign attachment
type AgeCampaignCount struct {
	Age          int64
	WithCampaign int64
	Without      int64
}

// TextCount is a tallied free-text answer
type TextCount struct {
	Answer string
	Count  int64
}
