package dto

// CampaignKPIsResponse is the campaign headline block
type CampaignKPIsResponse struct {
	CampaignReservationRate float64 `json:"campaignReservationRate"`
	CampaignProfit          float64 `json:"campaignProfit"`
	LowOccupancyTours       int64   `json:"lowOccupancyTours"`
}

// ComparisonResponse compares one metric between campaign-attached and
// non-attached reservations; the Turkish keys are the dashboard's contract
type ComparisonResponse struct {
	Metric      string  `json:"metric"`
	Kampanyali  float64 `json:"kampanyali"`
	Kampanyasiz float64 `json:"kampanyasiz"`
}

// ROIEntry is one campaign in the ROI ranking
type ROIEntry struct {
	CampaignID     int64   `json:"campaignId"`
	CampaignName   string  `json:"campaignName"`
	DiscountRate   float64 `json:"discountRate"`
	TotalProfit    float64 `json:"totalProfit"`
	DiscountAmount float64 `json:"discountAmount"`
	ROI            float64 `json:"roi"`
}

// ROIRankingResponse ranks campaigns by ROI, descending
type ROIRankingResponse struct {
	Ranking []ROIEntry `json:"ranking"`
}

// TourOccupancyImpact is one tour's recomputed occupancy before and after a
// campaign window
type TourOccupancyImpact struct {
	TourID          int64   `json:"tourId"`
	TourName        string  `json:"tourName"`
	OccupancyBefore float64 `json:"occupancyBefore"`
	OccupancyAfter  float64 `json:"occupancyAfter"`
	Delta           float64 `json:"delta"`
}

// OccupancyImpactResponse summarizes a single campaign's occupancy effect
type OccupancyImpactResponse struct {
	CampaignID   int64                 `json:"campaignId"`
	CampaignName string                `json:"campaignName"`
	Tours        []TourOccupancyImpact `json:"tours"`
	AverageDelta float64               `json:"averageDelta"`
}

// OccupancyImpactRow is one campaign x tour pair with its classified delta
type OccupancyImpactRow struct {
	CampaignID      int64   `json:"campaignId"`
	CampaignName    string  `json:"campaignName"`
	TourID          int64   `json:"tourId"`
	TourName        string  `json:"tourName"`
	OccupancyBefore float64 `json:"occupancyBefore"`
	OccupancyAfter  float64 `json:"occupancyAfter"`
	Delta           float64 `json:"delta"`
	Impact          string  `json:"impact"`
}

// OccupancyImpactTableResponse is the full pair table, sorted by delta desc
type OccupancyImpactTableResponse struct {
	Rows []OccupancyImpactRow `json:"rows"`
}

// WhatIfResponse reports a discount (or removal) simulation for one campaign
type WhatIfResponse struct {
	CampaignID           int64   `json:"campaignId"`
	CampaignName         string  `json:"campaignName"`
	CurrentDiscount      float64 `json:"currentDiscount"`
	SimulatedDiscount    float64 `json:"simulatedDiscount"`
	ReservationCount     int64   `json:"reservationCount"`
	OriginalTotalProfit  float64 `json:"originalTotalProfit"`
	SimulatedTotalProfit float64 `json:"simulatedTotalProfit"`
	OriginalAvgProfit    float64 `json:"originalAvgProfit"`
	SimulatedAvgProfit   float64 `json:"simulatedAvgProfit"`
	ProfitChangePercent  float64 `json:"profitChangePercent"`
}

// MatrixCellValue is one campaign x tour-type cell of the impact matrix
type MatrixCellValue struct {
	Campaign string  `json:"campaign"`
	TourType string  `json:"tourType"`
	Value    float64 `json:"value"`
}

// ImpactMatrixResponse is the campaign x tour-type grid for heatmap
// rendering; Min and Max feed caller-side color scaling
type ImpactMatrixResponse struct {
	Metric    string            `json:"metric"`
	Campaigns []string          `json:"campaigns"`
	TourTypes []string          `json:"tourTypes"`
	Cells     []MatrixCellValue `json:"cells"`
	Min       float64           `json:"min"`
	Max       float64           `json:"max"`
	Best      *MatrixCellValue  `json:"best"`
}
