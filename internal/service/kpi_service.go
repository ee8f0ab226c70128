package service

import (
	"context"
	"time"

	"github.com/unalcansuu/kds-jolly/internal/dto"
	"github.com/unalcansuu/kds-jolly/internal/repository"
)

// Rolling window length behind the "monthly" KPIs
const monthlyWindow = 30 * 24 * time.Hour

// KPIService computes the dashboard's headline KPI blocks
type KPIService interface {
	// Overview returns entity totals and the survey participation rate
	Overview(ctx context.Context) (*dto.OverviewResponse, error)
	// MonthlyProfit sums profit over the rolling last 30 days
	MonthlyProfit(ctx context.Context) (*dto.MonthlyProfitResponse, error)
	// MonthlyInsights compares the last 30 days against the 30 days
	// before them
	MonthlyInsights(ctx context.Context) (*dto.MonthlyInsightsResponse, error)
	// FeaturedTours names the most profitable and the riskiest tour of
	// the last 30 days
	FeaturedTours(ctx context.Context) (*dto.FeaturedToursResponse, error)
}

type kpiService struct {
	repo repository.KPIRepository
	now  func() time.Time
}

// NewKPIService creates a new KPIService
func NewKPIService(repo repository.KPIRepository) KPIService {
	return &kpiService{repo: repo, now: time.Now}
}

func (s *kpiService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	counts, err := s.repo.OverviewCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.OverviewResponse{
		TotalCustomers:          counts.Customers,
		TotalReservations:       counts.Reservations,
		TotalTours:              counts.Tours,
		SurveyParticipants:      counts.SurveyParticipants,
		SurveyParticipationRate: Percent(float64(counts.SurveyParticipants), float64(counts.Customers)),
	}, nil
}

func (s *kpiService) MonthlyProfit(ctx context.Context) (*dto.MonthlyProfitResponse, error) {
	now := s.now()
	profit, err := s.repo.ProfitBetween(ctx, now.Add(-monthlyWindow), now)
	if err != nil {
		return nil, err
	}
	return &dto.MonthlyProfitResponse{MonthlyProfit: Round2(profit)}, nil
}

func (s *kpiService) MonthlyInsights(ctx context.Context) (*dto.MonthlyInsightsResponse, error) {
	now := s.now()

	current, err := s.repo.WindowStats(ctx, now.Add(-monthlyWindow), now)
	if err != nil {
		return nil, err
	}
	previous, err := s.repo.WindowStats(ctx, now.Add(-2*monthlyWindow), now.Add(-monthlyWindow))
	if err != nil {
		return nil, err
	}

	return &dto.MonthlyInsightsResponse{
		ReservationChangePercent:   PercentChange(float64(current.Count), float64(previous.Count)),
		ProfitChangePercent:        PercentChange(current.TotalProfit, previous.TotalProfit),
		AverageProfitChangePercent: PercentChange(avgProfit(current.TotalProfit, current.Count), avgProfit(previous.TotalProfit, previous.Count)),
		CampaignReservationRate:    Percent(float64(current.CampaignCount), float64(current.Count)),
	}, nil
}

func avgProfit(total float64, count int64) float64 {
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func (s *kpiService) FeaturedTours(ctx context.Context) (*dto.FeaturedToursResponse, error) {
	now := s.now()
	from, to := now.Add(-monthlyWindow), now

	response := &dto.FeaturedToursResponse{}

	top, err := s.repo.TopProfitTour(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if top != nil {
		profit := Round2(top.TotalProfit)
		response.MostProfitable = &dto.FeaturedTour{
			TourID:      top.TourID,
			TourName:    top.TourName,
			TotalProfit: &profit,
		}
	}

	riskiest, err := s.repo.LowestOccupancyReservedTour(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if riskiest == nil {
		// No reservations in the window; fall back to the global
		// lowest-occupancy tour
		riskiest, err = s.repo.LowestOccupancyTour(ctx)
		if err != nil {
			return nil, err
		}
	}
	if riskiest != nil {
		occupancy := Round2(riskiest.Occupancy)
		response.Riskiest = &dto.FeaturedTour{
			TourID:       riskiest.TourID,
			TourName:     riskiest.TourName,
			DolulukOrani: &occupancy,
		}
	}

	return response, nil
}
