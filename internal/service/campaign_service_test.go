package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unalcansuu/kds-jolly/internal/domain"
)

type stubCampaignRepo struct {
	campaign     *domain.Campaign
	share        *domain.CampaignShare
	lowOccupancy int64
	attached     *domain.ComparisonSide
	detached     *domain.ComparisonSide
	roi          []domain.CampaignROI
	windows      []domain.CampaignTourWindow
	allWindows   []domain.CampaignTourWindow
	reservations []domain.SimReservation
	matrixCells  []domain.MatrixCell
}

func (s *stubCampaignRepo) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	return s.campaign, nil
}

func (s *stubCampaignRepo) Share(ctx context.Context) (*domain.CampaignShare, error) {
	return s.share, nil
}

func (s *stubCampaignRepo) LowOccupancyCampaignTourCount(ctx context.Context, threshold float64) (int64, error) {
	return s.lowOccupancy, nil
}

func (s *stubCampaignRepo) ComparisonSides(ctx context.Context) (*domain.ComparisonSide, *domain.ComparisonSide, error) {
	return s.attached, s.detached, nil
}

func (s *stubCampaignRepo) ROIAggregates(ctx context.Context) ([]domain.CampaignROI, error) {
	return s.roi, nil
}

func (s *stubCampaignRepo) TourWindows(ctx context.Context, campaignID int64, start, end time.Time) ([]domain.CampaignTourWindow, error) {
	return s.windows, nil
}

func (s *stubCampaignRepo) AllTourWindows(ctx context.Context) ([]domain.CampaignTourWindow, error) {
	return s.allWindows, nil
}

func (s *stubCampaignRepo) Reservations(ctx context.Context, campaignID int64) ([]domain.SimReservation, error) {
	return s.reservations, nil
}

func (s *stubCampaignRepo) MatrixCells(ctx context.Context) ([]domain.MatrixCell, error) {
	return s.matrixCells, nil
}

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:           1,
		Name:         "Erken Rezervasyon",
		DiscountRate: 20,
		StartDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCampaignService_KPIs(t *testing.T) {
	repo := &stubCampaignRepo{
		share:        &domain.CampaignShare{TotalReservations: 300, CampaignReservations: 100, CampaignProfit: 4500.256},
		lowOccupancy: 4,
	}
	svc := NewCampaignService(repo)

	kpis, err := svc.KPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 33.3, kpis.CampaignReservationRate)
	assert.Equal(t, 4500.26, kpis.CampaignProfit)
	assert.Equal(t, int64(4), kpis.LowOccupancyTours)
}

func TestCampaignService_Comparison(t *testing.T) {
	repo := &stubCampaignRepo{
		attached: &domain.ComparisonSide{Reservations: 3, TotalProfit: 900, AvgProfit: 300, AvgOccupancy: 70},
		detached: &domain.ComparisonSide{Reservations: 7, TotalProfit: 1400, AvgProfit: 200, AvgOccupancy: 55},
	}
	svc := NewCampaignService(repo)

	comparison, err := svc.Comparison(context.Background(), "rezervasyon_sayisi")
	require.NoError(t, err)
	assert.Equal(t, "rezervasyon_sayisi", comparison.Metric)
	assert.Equal(t, 3.0, comparison.Kampanyali)
	assert.Equal(t, 7.0, comparison.Kampanyasiz)

	comparison, err = svc.Comparison(context.Background(), "ortalama_doluluk")
	require.NoError(t, err)
	assert.Equal(t, 70.0, comparison.Kampanyali)
	assert.Equal(t, 55.0, comparison.Kampanyasiz)
}

func TestCampaignService_Comparison_UnknownMetric(t *testing.T) {
	svc := NewCampaignService(&stubCampaignRepo{})

	_, err := svc.Comparison(context.Background(), "kar_orani")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestCampaignService_ROIRanking(t *testing.T) {
	repo := &stubCampaignRepo{roi: []domain.CampaignROI{
		{CampaignID: 1, CampaignName: "Yaz İndirimi", DiscountRate: 10, TotalProfit: 500, DiscountAmount: 1000},
		{CampaignID: 2, CampaignName: "Kış Kampanyası", DiscountRate: 0, TotalProfit: 800, DiscountAmount: 0},
		{CampaignID: 3, CampaignName: "Erken Rezervasyon", DiscountRate: 20, TotalProfit: 3000, DiscountAmount: 1500},
	}}
	svc := NewCampaignService(repo)

	ranking, err := svc.ROIRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, ranking.Ranking, 3)
	// 3000/1500*100 = 200 beats 500/1000*100 = 50; zero discount pins ROI to 0
	assert.Equal(t, int64(3), ranking.Ranking[0].CampaignID)
	assert.Equal(t, 200.0, ranking.Ranking[0].ROI)
	assert.Equal(t, int64(1), ranking.Ranking[1].CampaignID)
	assert.Equal(t, 50.0, ranking.Ranking[1].ROI)
	assert.Equal(t, int64(2), ranking.Ranking[2].CampaignID)
	assert.Zero(t, ranking.Ranking[2].ROI)
}

func TestCampaignService_OccupancyImpact(t *testing.T) {
	repo := &stubCampaignRepo{
		campaign: testCampaign(),
		windows: []domain.CampaignTourWindow{
			{TourID: 1, TourName: "Kapadokya Turu", Capacity: 50, BeforeCount: 10, AfterCount: 20},
			{TourID: 2, TourName: "Ege Turu", Capacity: 0, BeforeCount: 1, AfterCount: 2},
		},
	}
	svc := NewCampaignService(repo)

	impact, err := svc.OccupancyImpact(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Erken Rezervasyon", impact.CampaignName)
	require.Len(t, impact.Tours, 2)
	assert.Equal(t, 20.0, impact.Tours[0].OccupancyBefore)
	assert.Equal(t, 40.0, impact.Tours[0].OccupancyAfter)
	assert.Equal(t, 20.0, impact.Tours[0].Delta)
	// zero capacity is computed against 1
	assert.Equal(t, 100.0, impact.Tours[1].OccupancyBefore)
	assert.Equal(t, 200.0, impact.Tours[1].OccupancyAfter)
	assert.Equal(t, 60.0, impact.AverageDelta)
}

func TestCampaignService_OccupancyImpact_NotFound(t *testing.T) {
	svc := NewCampaignService(&stubCampaignRepo{})

	_, err := svc.OccupancyImpact(context.Background(), 42)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestCampaignService_OccupancyImpactTable_Classification(t *testing.T) {
	repo := &stubCampaignRepo{allWindows: []domain.CampaignTourWindow{
		{CampaignID: 1, CampaignName: "A", TourID: 1, TourName: "T1", Capacity: 100, BeforeCount: 10, AfterCount: 20},
		{CampaignID: 1, CampaignName: "A", TourID: 2, TourName: "T2", Capacity: 100, BeforeCount: 20, AfterCount: 22},
		{CampaignID: 2, CampaignName: "B", TourID: 3, TourName: "T3", Capacity: 100, BeforeCount: 30, AfterCount: 10},
	}}
	svc := NewCampaignService(repo)

	table, err := svc.OccupancyImpactTable(context.Background())
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	// sorted by delta descending
	assert.Equal(t, "Positive impact", table.Rows[0].Impact)
	assert.Equal(t, 10.0, table.Rows[0].Delta)
	assert.Equal(t, "Neutral", table.Rows[1].Impact)
	assert.Equal(t, "Negative impact", table.Rows[2].Impact)
	assert.Equal(t, -20.0, table.Rows[2].Delta)
}

func TestCampaignService_WhatIfDiscount(t *testing.T) {
	repo := &stubCampaignRepo{
		campaign: testCampaign(), // 20% actual discount
		reservations: []domain.SimReservation{
			{ReservationID: 1, Price: 1000, Cost: 500, PartySize: 2, Profit: 600},
			{ReservationID: 2, Price: 1000, Cost: 500, PartySize: 1, Profit: 300},
		},
	}
	svc := NewCampaignService(repo)

	result, err := svc.WhatIfDiscount(context.Background(), 1, 10)
	require.NoError(t, err)
	// at 20%: (1600-1000) + (800-500) = 900; at 10%: (1800-1000) + (900-500) = 1200
	assert.Equal(t, 900.0, result.OriginalTotalProfit)
	assert.Equal(t, 1200.0, result.SimulatedTotalProfit)
	assert.Equal(t, 450.0, result.OriginalAvgProfit)
	assert.Equal(t, 600.0, result.SimulatedAvgProfit)
	assert.Equal(t, 33.33, result.ProfitChangePercent)
	assert.Equal(t, int64(2), result.ReservationCount)
	assert.Equal(t, 20.0, result.CurrentDiscount)
	assert.Equal(t, 10.0, result.SimulatedDiscount)
}

func TestCampaignService_WhatIfDiscount_SameRateIsNoop(t *testing.T) {
	repo := &stubCampaignRepo{
		campaign: testCampaign(),
		reservations: []domain.SimReservation{
			{ReservationID: 1, Price: 1000, Cost: 500, PartySize: 2, Profit: 600},
			{ReservationID: 2, Price: 750, Cost: 300, PartySize: 3, Profit: 900},
		},
	}
	svc := NewCampaignService(repo)

	result, err := svc.WhatIfDiscount(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, result.OriginalTotalProfit, result.SimulatedTotalProfit)
	assert.Zero(t, result.ProfitChangePercent)
}

func TestCampaignService_WhatIfDiscount_InvalidRate(t *testing.T) {
	svc := NewCampaignService(&stubCampaignRepo{campaign: testCampaign()})

	_, err := svc.WhatIfDiscount(context.Background(), 1, 51)
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = svc.WhatIfDiscount(context.Background(), 1, -1)
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestCampaignService_WhatIfDiscount_NoReservations(t *testing.T) {
	svc := NewCampaignService(&stubCampaignRepo{campaign: testCampaign()})

	result, err := svc.WhatIfDiscount(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Zero(t, result.ReservationCount)
	assert.Zero(t, result.OriginalAvgProfit)
	assert.Zero(t, result.ProfitChangePercent)
}

func TestCampaignService_WhatIfRemoval(t *testing.T) {
	repo := &stubCampaignRepo{
		campaign: testCampaign(),
		reservations: []domain.SimReservation{
			{ReservationID: 1, Price: 1000, Cost: 500, PartySize: 2, Profit: 600},
		},
	}
	svc := NewCampaignService(repo)

	result, err := svc.WhatIfRemoval(context.Background(), 1)
	require.NoError(t, err)
	// stored profit vs full-price repricing 2000-1000
	assert.Equal(t, 600.0, result.OriginalTotalProfit)
	assert.Equal(t, 1000.0, result.SimulatedTotalProfit)
	assert.Equal(t, 66.67, result.ProfitChangePercent)
	assert.Zero(t, result.SimulatedDiscount)
}

func TestCampaignService_ImpactMatrix(t *testing.T) {
	repo := &stubCampaignRepo{matrixCells: []domain.MatrixCell{
		{CampaignName: "A", TourType: "Yaz", Reservations: 10, TotalProfit: 2000, AvgProfit: 200, AvgOccupancy: 60},
		{CampaignName: "B", TourType: "Kültür", Reservations: 5, TotalProfit: 1500, AvgProfit: 300, AvgOccupancy: 45},
	}}
	svc := NewCampaignService(repo)

	matrix, err := svc.ImpactMatrix(context.Background(), "total_profit")
	require.NoError(t, err)
	assert.Equal(t, "total_profit", matrix.Metric)
	assert.Equal(t, []string{"A", "B"}, matrix.Campaigns)
	assert.Equal(t, []string{"Kültür", "Yaz"}, matrix.TourTypes)
	assert.Equal(t, 1500.0, matrix.Min)
	assert.Equal(t, 2000.0, matrix.Max)
	require.NotNil(t, matrix.Best)
	assert.Equal(t, "A", matrix.Best.Campaign)
}

func TestCampaignService_ImpactMatrix_UnknownMetricFallsBack(t *testing.T) {
	repo := &stubCampaignRepo{matrixCells: []domain.MatrixCell{
		{CampaignName: "A", TourType: "Yaz", Reservations: 10, TotalProfit: 2000, AvgProfit: 200, AvgOccupancy: 60},
	}}
	svc := NewCampaignService(repo)

	matrix, err := svc.ImpactMatrix(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, "avg_profit", matrix.Metric)
	assert.Equal(t, 200.0, matrix.Cells[0].Value)
}
