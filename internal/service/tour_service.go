package service

import (
	"context"
	"time"

	"github.com/unalcansuu/kds-jolly/internal/dto"
	"github.com/unalcansuu/kds-jolly/internal/repository"
)

// TourService computes tour-level reports: occupancy alerts, per-type
// rankings, duration-band insights and the monthly trend series.
type TourService interface {
	// OccupancyAlerts lists tours at or below the alert threshold,
	// ascending by occupancy, each labeled critical or warning
	OccupancyAlerts(ctx context.Context) (*dto.OccupancyAlertsResponse, error)
	// TypeStats counts tours per type
	TypeStats(ctx context.Context) ([]dto.TourTypeStat, error)
	// PopularTypes ranks tour types by reservation count, descending
	PopularTypes(ctx context.Context) (*dto.PopularTypesResponse, error)
	// OccupancyByType ranks tour types by average occupancy, descending
	OccupancyByType(ctx context.Context) (*dto.OccupancyByTypeResponse, error)
	// TypeLeaders reports the top type by reservations and by occupancy
	TypeLeaders(ctx context.Context) (*dto.TypeLeadersResponse, error)
	// DurationInsights aggregates reservations into the fixed duration
	// bands, zero-filling bands with no data
	DurationInsights(ctx context.Context) (*dto.DurationInsightsResponse, error)
	// MonthlyTrends returns the last-3-months reservation counts grouped
	// by month and tour type
	MonthlyTrends(ctx context.Context) (*dto.MonthlyTrendsResponse, error)
	// TourDetail returns one tour with its computed occupancy, or
	// ErrTourNotFound
	TourDetail(ctx context.Context, tourID int64) (*dto.TourDetailResponse, error)
}

type tourService struct {
	repo repository.TourRepository
	now  func() time.Time
}

// NewTourService creates a new TourService
func NewTourService(repo repository.TourRepository) TourService {
	return &tourService{repo: repo, now: time.Now}
}

func (s *tourService) OccupancyAlerts(ctx context.Context) (*dto.OccupancyAlertsResponse, error) {
	tours, err := s.repo.LowOccupancyTours(ctx, AlertThreshold)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.OccupancyAlert, 0, len(tours))
	for _, tour := range tours {
		alerts = append(alerts, dto.OccupancyAlert{
			TourID:       tour.TourID,
			TourName:     tour.TourName,
			DolulukOrani: Round2(tour.Occupancy),
			AlertLevel:   OccupancyAlertLevel(tour.Occupancy),
		})
	}
	return &dto.OccupancyAlertsResponse{Alerts: alerts}, nil
}

func (s *tourService) TypeStats(ctx context.Context) ([]dto.TourTypeStat, error) {
	counts, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]dto.TourTypeStat, 0, len(counts))
	for _, count := range counts {
		stats = append(stats, dto.TourTypeStat{TurTuru: count.TourType, Toplam: count.Count})
	}
	return stats, nil
}

func (s *tourService) PopularTypes(ctx context.Context) (*dto.PopularTypesResponse, error) {
	counts, err := s.repo.ReservationCountByType(ctx)
	if err != nil {
		return nil, err
	}

	types := make([]dto.TypeReservationCount, 0, len(counts))
	for _, count := range counts {
		types = append(types, dto.TypeReservationCount{TourType: count.TourType, Reservations: count.Count})
	}
	return &dto.PopularTypesResponse{Types: types}, nil
}

func (s *tourService) OccupancyByType(ctx context.Context) (*dto.OccupancyByTypeResponse, error) {
	occupancies, err := s.repo.AvgOccupancyByType(ctx)
	if err != nil {
		return nil, err
	}

	types := make([]dto.TypeOccupancy, 0, len(occupancies))
	for _, occupancy := range occupancies {
		types = append(types, dto.TypeOccupancy{
			TourType:     occupancy.TourType,
			AvgOccupancy: Round2(occupancy.AvgOccupancy),
		})
	}
	return &dto.OccupancyByTypeResponse{Types: types}, nil
}

func (s *tourService) TypeLeaders(ctx context.Context) (*dto.TypeLeadersResponse, error) {
	popular, err := s.PopularTypes(ctx)
	if err != nil {
		return nil, err
	}
	occupancy, err := s.OccupancyByType(ctx)
	if err != nil {
		return nil, err
	}

	leaders := &dto.TypeLeadersResponse{}
	if len(popular.Types) > 0 {
		leaders.MostReserved = &popular.Types[0]
	}
	if len(occupancy.Types) > 0 {
		leaders.HighestOccupancy = &occupancy.Types[0]
	}
	return leaders, nil
}

func (s *tourService) DurationInsights(ctx context.Context) (*dto.DurationInsightsResponse, error) {
	stats, err := s.repo.DurationStats(ctx)
	if err != nil {
		return nil, err
	}

	byBand := make(map[string]*dto.DurationBandInsight, len(DurationBands))
	bands := make([]dto.DurationBandInsight, len(DurationBands))
	for i, band := range DurationBands {
		bands[i] = dto.DurationBandInsight{Band: band}
		byBand[band] = &bands[i]
	}

	var total int64
	for _, stat := range stats {
		band, ok := DurationBand(stat.DurationDays)
		if !ok {
			continue
		}
		insight := byBand[band]
		insight.Reservations += stat.Reservations
		// Each tour has exactly one duration, so per-duration distinct
		// counts sum without double counting
		insight.DistinctTours += stat.DistinctTours
		insight.Weekend += stat.Weekend
		insight.Weekday += stat.Reservations - stat.Weekend
		total += stat.Reservations
	}

	return &dto.DurationInsightsResponse{Bands: bands, Total: total}, nil
}

func (s *tourService) MonthlyTrends(ctx context.Context) (*dto.MonthlyTrendsResponse, error) {
	points, err := s.repo.MonthlyTrend(ctx, s.now().AddDate(0, -3, 0))
	if err != nil {
		return nil, err
	}

	// Points arrive in chronological order; fold them into month buckets
	months := make([]dto.TrendMonth, 0)
	for _, point := range points {
		if len(months) == 0 || months[len(months)-1].Year != point.Year || months[len(months)-1].Month != point.Month {
			months = append(months, dto.TrendMonth{
				Year:  point.Year,
				Month: point.Month,
				Types: make([]dto.TrendTypeCount, 0, 4),
			})
		}
		bucket := &months[len(months)-1]
		bucket.Types = append(bucket.Types, dto.TrendTypeCount{TourType: point.TourType, Count: point.Count})
	}

	return &dto.MonthlyTrendsResponse{Months: months}, nil
}

func (s *tourService) TourDetail(ctx context.Context, tourID int64) (*dto.TourDetailResponse, error) {
	tour, err := s.repo.GetByID(ctx, tourID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, ErrTourNotFound
	}

	reservations, err := s.repo.ReservationCount(ctx, tourID)
	if err != nil {
		return nil, err
	}

	return &dto.TourDetailResponse{
		TourID:            tour.ID,
		TourName:          tour.Name,
		TourType:          tour.Type,
		Capacity:          tour.Capacity,
		Price:             tour.Price,
		DurationDays:      tour.DurationDays,
		DolulukOrani:      Round2(tour.OccupancyRate),
		ComputedOccupancy: ComputedOccupancy(reservations, tour.Capacity),
		Reservations:      reservations,
	}, nil
}
