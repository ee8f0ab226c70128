package repository

import (
	"context"
	"time"

	"github.com/unalcansuu/kds-jolly/internal/domain"
)

// TourRepository provides tour-level aggregates: occupancy alerts, per-type
// groupings, duration statistics and the reservation trend series.
type TourRepository interface {
	// GetByID returns a single tour, or nil when it does not exist
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
	// ReservationCount counts all reservations of one tour
	ReservationCount(ctx context.Context, tourID int64) (int64, error)
	// LowOccupancyTours returns tours with occupancy <= threshold,
	// ordered ascending by occupancy
	LowOccupancyTours(ctx context.Context, threshold float64) ([]domain.TourOccupancy, error)
	// CountByType counts tours per tour type
	CountByType(ctx context.Context) ([]domain.TypeCount, error)
	// ReservationCountByType counts reservations per tour type, descending
	ReservationCountByType(ctx context.Context) ([]domain.TypeCount, error)
	// AvgOccupancyByType averages stored occupancy per tour type, descending
	AvgOccupancyByType(ctx context.Context) ([]domain.TypeOccupancy, error)
	// DurationStats aggregates reservations per exact tour duration;
	// tours with null duration are excluded
	DurationStats(ctx context.Context) ([]domain.DurationStats, error)
	// MonthlyTrend counts reservations per (year, month, tour type) for
	// dates on or after from, in chronological order
	MonthlyTrend(ctx context.Context, from time.Time) ([]domain.TrendPoint, error)
}
