package dto

// OverviewResponse is the headline KPI block of the dashboard
type OverviewResponse struct {
	TotalCustomers          int64   `json:"totalCustomers"`
	TotalReservations       int64   `json:"totalReservations"`
	TotalTours              int64   `json:"totalTours"`
	SurveyParticipants      int64   `json:"surveyParticipants"`
	SurveyParticipationRate float64 `json:"surveyParticipationRate"`
}

// MonthlyProfitResponse is the rolling 30-day profit total
type MonthlyProfitResponse struct {
	MonthlyProfit float64 `json:"monthlyProfit"`
}

// MonthlyInsightsResponse compares the last 30 days against the 30 days
// before them
type MonthlyInsightsResponse struct {
	ReservationChangePercent   float64 `json:"reservationChangePercent"`
	ProfitChangePercent        float64 `json:"profitChangePercent"`
	AverageProfitChangePercent float64 `json:"averageProfitChangePercent"`
	CampaignReservationRate    float64 `json:"campaignReservationRate"`
}

// FeaturedTour is one side of the featured-tours card
type FeaturedTour struct {
	TourID       int64    `json:"tourId"`
	TourName     string   `json:"tourName"`
	TotalProfit  *float64 `json:"totalProfit,omitempty"`
	DolulukOrani *float64 `json:"dolulukOrani,omitempty"`
}

// FeaturedToursResponse names the most profitable and the riskiest tour of
// the last month. Either side is null when no data qualifies.
type FeaturedToursResponse struct {
	MostProfitable *FeaturedTour `json:"mostProfitable"`
	Riskiest       *FeaturedTour `json:"riskiest"`
}
