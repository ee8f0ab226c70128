package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unalcansuu/kds-jolly/internal/domain"
)

type stubKPIRepo struct {
	counts        *domain.OverviewCounts
	profit        map[time.Time]float64
	current       *domain.WindowStats
	previous      *domain.WindowStats
	topTour       *domain.TourProfit
	reservedRisk  *domain.TourOccupancy
	globalRisk    *domain.TourOccupancy
	windowQueries []time.Time
}

func (s *stubKPIRepo) OverviewCounts(ctx context.Context) (*domain.OverviewCounts, error) {
	return s.counts, nil
}

func (s *stubKPIRepo) ProfitBetween(ctx context.Context, from, to time.Time) (float64, error) {
	return s.profit[from], nil
}

func (s *stubKPIRepo) WindowStats(ctx context.Context, from, to time.Time) (*domain.WindowStats, error) {
	s.windowQueries = append(s.windowQueries, from, to)
	if len(s.windowQueries) <= 2 {
		return s.current, nil
	}
	return s.previous, nil
}

func (s *stubKPIRepo) TopProfitTour(ctx context.Context, from, to time.Time) (*domain.TourProfit, error) {
	return s.topTour, nil
}

func (s *stubKPIRepo) LowestOccupancyReservedTour(ctx context.Context, from, to time.Time) (*domain.TourOccupancy, error) {
	return s.reservedRisk, nil
}

func (s *stubKPIRepo) LowestOccupancyTour(ctx context.Context) (*domain.TourOccupancy, error) {
	return s.globalRisk, nil
}

func newKPIServiceWithNow(repo *stubKPIRepo, now time.Time) *kpiService {
	return &kpiService{repo: repo, now: func() time.Time { return now }}
}

func TestKPIService_Overview(t *testing.T) {
	repo := &stubKPIRepo{counts: &domain.OverviewCounts{
		Customers:          200,
		Reservations:       540,
		Tours:              12,
		SurveyParticipants: 50,
	}}
	svc := NewKPIService(repo)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(200), overview.TotalCustomers)
	assert.Equal(t, int64(540), overview.TotalReservations)
	assert.Equal(t, 25.0, overview.SurveyParticipationRate)
}

func TestKPIService_Overview_NoCustomers(t *testing.T) {
	repo := &stubKPIRepo{counts: &domain.OverviewCounts{}}
	svc := NewKPIService(repo)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, overview.SurveyParticipationRate)
}

func TestKPIService_MonthlyProfit_Windowing(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	from := now.Add(-30 * 24 * time.Hour)
	repo := &stubKPIRepo{profit: map[time.Time]float64{from: 1234.5}}
	svc := newKPIServiceWithNow(repo, now)

	profit, err := svc.MonthlyProfit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1234.5, profit.MonthlyProfit)
}

func TestKPIService_MonthlyInsights(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := &stubKPIRepo{
		current:  &domain.WindowStats{Count: 150, TotalProfit: 3000, CampaignCount: 45},
		previous: &domain.WindowStats{Count: 100, TotalProfit: 2400, CampaignCount: 20},
	}
	svc := newKPIServiceWithNow(repo, now)

	insights, err := svc.MonthlyInsights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50.0, insights.ReservationChangePercent)
	assert.Equal(t, 25.0, insights.ProfitChangePercent)
	// avg 20 -> 24, a -16.67% drop in per-reservation profit
	assert.Equal(t, -16.67, insights.AverageProfitChangePercent)
	assert.Equal(t, 30.0, insights.CampaignReservationRate)

	// current window is [now-30d, now), previous is the 30 days before it
	require.Len(t, repo.windowQueries, 4)
	assert.Equal(t, now.Add(-30*24*time.Hour), repo.windowQueries[0])
	assert.Equal(t, now, repo.windowQueries[1])
	assert.Equal(t, now.Add(-60*24*time.Hour), repo.windowQueries[2])
	assert.Equal(t, now.Add(-30*24*time.Hour), repo.windowQueries[3])
}

func TestKPIService_MonthlyInsights_EmptyWindows(t *testing.T) {
	repo := &stubKPIRepo{
		current:  &domain.WindowStats{},
		previous: &domain.WindowStats{},
	}
	svc := NewKPIService(repo)

	insights, err := svc.MonthlyInsights(context.Background())
	require.NoError(t, err)
	assert.Zero(t, insights.ReservationChangePercent)
	assert.Zero(t, insights.ProfitChangePercent)
	assert.Zero(t, insights.AverageProfitChangePercent)
	assert.Zero(t, insights.CampaignReservationRate)
}

func TestKPIService_FeaturedTours(t *testing.T) {
	repo := &stubKPIRepo{
		topTour:      &domain.TourProfit{TourID: 3, TourName: "Kapadokya Turu", TotalProfit: 9000.456},
		reservedRisk: &domain.TourOccupancy{TourID: 7, TourName: "Karadeniz Turu", Occupancy: 31.5},
	}
	svc := NewKPIService(repo)

	featured, err := svc.FeaturedTours(context.Background())
	require.NoError(t, err)
	require.NotNil(t, featured.MostProfitable)
	assert.Equal(t, int64(3), featured.MostProfitable.TourID)
	assert.Equal(t, 9000.46, *featured.MostProfitable.TotalProfit)
	require.NotNil(t, featured.Riskiest)
	assert.Equal(t, 31.5, *featured.Riskiest.DolulukOrani)
}

func TestKPIService_FeaturedTours_GlobalFallback(t *testing.T) {
	repo := &stubKPIRepo{
		globalRisk: &domain.TourOccupancy{TourID: 9, TourName: "Ege Turu", Occupancy: 12},
	}
	svc := NewKPIService(repo)

	featured, err := svc.FeaturedTours(context.Background())
	require.NoError(t, err)
	assert.Nil(t, featured.MostProfitable)
	require.NotNil(t, featured.Riskiest)
	assert.Equal(t, int64(9), featured.Riskiest.TourID)
}
