package service

import (
	"context"
	"sort"

	"github.com/unalcansuu/kds-jolly/internal/domain"
	"github.com/unalcansuu/kds-jolly/internal/dto"
	"github.com/unalcansuu/kds-jolly/internal/repository"
)

// Campaign analytics thresholds and limits
const (
	// Campaign tours below this occupancy count toward the KPI card
	campaignLowOccupancy = 50.0
	// What-if simulations accept discounts in [0, 50]
	maxSimulatedDiscount = 50.0
	// Occupancy deltas beyond +/- 5 points are classified as real impact
	impactDeadband = 5.0
)

// Comparison metrics; the Turkish names are the dashboard's query contract
var comparisonMetrics = map[string]func(*domain.ComparisonSide) float64{
	"rezervasyon_sayisi": func(s *domain.ComparisonSide) float64 { return float64(s.Reservations) },
	"ortalama_kar":       func(s *domain.ComparisonSide) float64 { return Round2(s.AvgProfit) },
	"toplam_kar":         func(s *domain.ComparisonSide) float64 { return Round2(s.TotalProfit) },
	"ortalama_doluluk":   func(s *domain.ComparisonSide) float64 { return Round2(s.AvgOccupancy) },
}

// Impact-matrix metrics; unknown metric names fall back to avg_profit
var matrixMetrics = map[string]func(*domain.MatrixCell) float64{
	"avg_profit":        func(c *domain.MatrixCell) float64 { return Round2(c.AvgProfit) },
	"total_profit":      func(c *domain.MatrixCell) float64 { return Round2(c.TotalProfit) },
	"reservation_count": func(c *domain.MatrixCell) float64 { return float64(c.Reservations) },
	"avg_occupancy":     func(c *domain.MatrixCell) float64 { return Round2(c.AvgOccupancy) },
}

const defaultMatrixMetric = "avg_profit"

// CampaignService computes campaign analytics: shares, ROI, occupancy
// impact windows and what-if discount simulations.
type CampaignService interface {
	// KPIs returns the campaign headline block
	KPIs(ctx context.Context) (*dto.CampaignKPIsResponse, error)
	// Comparison compares one metric between campaign-attached and
	// non-attached reservations; unknown metrics yield ErrUnknownMetric
	Comparison(ctx context.Context, metric string) (*dto.ComparisonResponse, error)
	// ROIRanking ranks campaigns by return on granted discount, descending
	ROIRanking(ctx context.Context) (*dto.ROIRankingResponse, error)
	// OccupancyImpact reports per-tour recomputed occupancy before and
	// after one campaign's date window; ErrCampaignNotFound when absent
	OccupancyImpact(ctx context.Context, campaignID int64) (*dto.OccupancyImpactResponse, error)
	// OccupancyImpactTable reports every campaign x tour pair with its
	// classified occupancy delta, sorted descending by delta
	OccupancyImpactTable(ctx context.Context) (*dto.OccupancyImpactTableResponse, error)
	// WhatIfDiscount simulates the campaign's reservations at a different
	// discount rate; rates outside [0, 50] yield ErrInvalidDiscount
	WhatIfDiscount(ctx context.Context, campaignID int64, simulatedDiscount float64) (*dto.WhatIfResponse, error)
	// WhatIfRemoval simulates the campaign's reservations at full price
	WhatIfRemoval(ctx context.Context, campaignID int64) (*dto.WhatIfResponse, error)
	// ImpactMatrix returns the campaign x tour-type grid for one metric
	ImpactMatrix(ctx context.Context, metric string) (*dto.ImpactMatrixResponse, error)
}

type campaignService struct {
	repo repository.CampaignRepository
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(repo repository.CampaignRepository) CampaignService {
	return &campaignService{repo: repo}
}

func (s *campaignService) KPIs(ctx context.Context) (*dto.CampaignKPIsResponse, error) {
	share, err := s.repo.Share(ctx)
	if err != nil {
		return nil, err
	}
	lowOccupancy, err := s.repo.LowOccupancyCampaignTourCount(ctx, campaignLowOccupancy)
	if err != nil {
		return nil, err
	}

	var rate float64
	if share.TotalReservations > 0 {
		rate = Round1(float64(share.CampaignReservations) * 100 / float64(share.TotalReservations))
	}

	return &dto.CampaignKPIsResponse{
		CampaignReservationRate: rate,
		CampaignProfit:          Round2(share.CampaignProfit),
		LowOccupancyTours:       lowOccupancy,
	}, nil
}

func (s *campaignService) Comparison(ctx context.Context, metric string) (*dto.ComparisonResponse, error) {
	extract, ok := comparisonMetrics[metric]
	if !ok {
		return nil, ErrUnknownMetric
	}

	attached, detached, err := s.repo.ComparisonSides(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ComparisonResponse{
		Metric:      metric,
		Kampanyali:  extract(attached),
		Kampanyasiz: extract(detached),
	}, nil
}

func (s *campaignService) ROIRanking(ctx context.Context) (*dto.ROIRankingResponse, error) {
	aggregates, err := s.repo.ROIAggregates(ctx)
	if err != nil {
		return nil, err
	}

	ranking := make([]dto.ROIEntry, 0, len(aggregates))
	for _, agg := range aggregates {
		entry := dto.ROIEntry{
			CampaignID:     agg.CampaignID,
			CampaignName:   agg.CampaignName,
			DiscountRate:   agg.DiscountRate,
			TotalProfit:    Round2(agg.TotalProfit),
			DiscountAmount: Round2(agg.DiscountAmount),
		}
		if agg.DiscountAmount != 0 {
			entry.ROI = Round2(agg.TotalProfit / agg.DiscountAmount * 100)
		}
		ranking = append(ranking, entry)
	}

	sort.Slice(ranking, func(i, j int) bool { return ranking[i].ROI > ranking[j].ROI })
	return &dto.ROIRankingResponse{Ranking: ranking}, nil
}

func (s *campaignService) OccupancyImpact(ctx context.Context, campaignID int64) (*dto.OccupancyImpactResponse, error) {
	campaign, err := s.repo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	windows, err := s.repo.TourWindows(ctx, campaignID, campaign.StartDate, campaign.EndDate)
	if err != nil {
		return nil, err
	}

	tours := make([]dto.TourOccupancyImpact, 0, len(windows))
	var deltaSum float64
	for _, window := range windows {
		before := ComputedOccupancy(window.BeforeCount, window.Capacity)
		after := ComputedOccupancy(window.AfterCount, window.Capacity)
		delta := Round2(after - before)
		deltaSum += delta
		tours = append(tours, dto.TourOccupancyImpact{
			TourID:          window.TourID,
			TourName:        window.TourName,
			OccupancyBefore: before,
			OccupancyAfter:  after,
			Delta:           delta,
		})
	}

	var averageDelta float64
	if len(tours) > 0 {
		averageDelta = Round2(deltaSum / float64(len(tours)))
	}

	return &dto.OccupancyImpactResponse{
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
		Tours:        tours,
		AverageDelta: averageDelta,
	}, nil
}

// classifyImpact labels an occupancy delta
func classifyImpact(delta float64) string {
	switch {
	case delta > impactDeadband:
		return "Positive impact"
	case delta < -impactDeadband:
		return "Negative impact"
	default:
		return "Neutral"
	}
}

func (s *campaignService) OccupancyImpactTable(ctx context.Context) (*dto.OccupancyImpactTableResponse, error) {
	windows, err := s.repo.AllTourWindows(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.OccupancyImpactRow, 0, len(windows))
	for _, window := range windows {
		before := ComputedOccupancy(window.BeforeCount, window.Capacity)
		after := ComputedOccupancy(window.AfterCount, window.Capacity)
		delta := Round2(after - before)
		rows = append(rows, dto.OccupancyImpactRow{
			CampaignID:      window.CampaignID,
			CampaignName:    window.CampaignName,
			TourID:          window.TourID,
			TourName:        window.TourName,
			OccupancyBefore: before,
			OccupancyAfter:  after,
			Delta:           delta,
			Impact:          classifyImpact(delta),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Delta > rows[j].Delta })
	return &dto.OccupancyImpactTableResponse{Rows: rows}, nil
}

// simulatedProfit prices one reservation at the given discount rate
func simulatedProfit(r domain.SimReservation, discount float64) float64 {
	party := float64(r.PartySize)
	return r.Price*party*(1-discount/100) - r.Cost*party
}

func (s *campaignService) WhatIfDiscount(ctx context.Context, campaignID int64, simulatedDiscount float64) (*dto.WhatIfResponse, error) {
	if simulatedDiscount < 0 || simulatedDiscount > maxSimulatedDiscount {
		return nil, ErrInvalidDiscount
	}

	campaign, err := s.repo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	reservations, err := s.repo.Reservations(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	var originalTotal, simulatedTotal float64
	for _, reservation := range reservations {
		originalTotal += simulatedProfit(reservation, campaign.DiscountRate)
		simulatedTotal += simulatedProfit(reservation, simulatedDiscount)
	}

	return s.whatIfResponse(campaign, simulatedDiscount, int64(len(reservations)), originalTotal, simulatedTotal), nil
}

func (s *campaignService) WhatIfRemoval(ctx context.Context, campaignID int64) (*dto.WhatIfResponse, error) {
	campaign, err := s.repo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	reservations, err := s.repo.Reservations(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	// Removal compares stored profit against full-price repricing
	var originalTotal, simulatedTotal float64
	for _, reservation := range reservations {
		originalTotal += reservation.Profit
		simulatedTotal += simulatedProfit(reservation, 0)
	}

	return s.whatIfResponse(campaign, 0, int64(len(reservations)), originalTotal, simulatedTotal), nil
}

func (s *campaignService) whatIfResponse(campaign *domain.Campaign, simulatedDiscount float64, count int64, originalTotal, simulatedTotal float64) *dto.WhatIfResponse {
	response := &dto.WhatIfResponse{
		CampaignID:           campaign.ID,
		CampaignName:         campaign.Name,
		CurrentDiscount:      campaign.DiscountRate,
		SimulatedDiscount:    simulatedDiscount,
		ReservationCount:     count,
		OriginalTotalProfit:  Round2(originalTotal),
		SimulatedTotalProfit: Round2(simulatedTotal),
	}
	if count > 0 {
		response.OriginalAvgProfit = Round2(originalTotal / float64(count))
		response.SimulatedAvgProfit = Round2(simulatedTotal / float64(count))
	}
	if originalTotal != 0 {
		response.ProfitChangePercent = Round2((simulatedTotal - originalTotal) / originalTotal * 100)
	}
	return response
}

func (s *campaignService) ImpactMatrix(ctx context.Context, metric string) (*dto.ImpactMatrixResponse, error) {
	extract, ok := matrixMetrics[metric]
	if !ok {
		metric = defaultMatrixMetric
		extract = matrixMetrics[metric]
	}

	cells, err := s.repo.MatrixCells(ctx)
	if err != nil {
		return nil, err
	}

	campaignSet := make(map[string]bool)
	typeSet := make(map[string]bool)
	values := make([]dto.MatrixCellValue, 0, len(cells))
	for _, cell := range cells {
		campaignSet[cell.CampaignName] = true
		typeSet[cell.TourType] = true
		values = append(values, dto.MatrixCellValue{
			Campaign: cell.CampaignName,
			TourType: cell.TourType,
			Value:    extract(&cell),
		})
	}

	response := &dto.ImpactMatrixResponse{
		Metric:    metric,
		Campaigns: sortedKeys(campaignSet),
		TourTypes: sortedKeys(typeSet),
		Cells:     values,
	}

	for i := range values {
		value := values[i].Value
		if response.Best == nil || value > response.Best.Value {
			response.Best = &values[i]
		}
		if i == 0 || value < response.Min {
			response.Min = value
		}
		if i == 0 || value > response.Max {
			response.Max = value
		}
	}

	return response, nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
