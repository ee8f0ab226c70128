package repository

import (
	"context"
	"time"

	"github.com/unalcansuu/kds-jolly/internal/domain"
)

// KPIRepository provides the aggregates behind the dashboard's headline
// KPI endpoints. All methods are read-only.
type KPIRepository interface {
	// OverviewCounts returns the total customer, reservation, tour and
	// distinct survey participant counts
	OverviewCounts(ctx context.Context) (*domain.OverviewCounts, error)
	// ProfitBetween sums reservation profit for dates in [from, to);
	// an empty window yields 0
	ProfitBetween(ctx context.Context, from, to time.Time) (float64, error)
	// WindowStats aggregates reservation count, total profit and
	// campaign-attached count for dates in [from, to)
	WindowStats(ctx context.Context, from, to time.Time) (*domain.WindowStats, error)
	// TopProfitTour returns the tour with the highest summed profit in
	// [from, to), or nil when the window holds no reservations
	TopProfitTour(ctx context.Context, from, to time.Time) (*domain.TourProfit, error)
	// LowestOccupancyReservedTour returns the lowest-occupancy tour among
	// tours with reservations in [from, to), or nil when none qualify
	LowestOccupancyReservedTour(ctx context.Context, from, to time.Time) (*domain.TourOccupancy, error)
	// LowestOccupancyTour returns the globally lowest-occupancy tour, or
	// nil when there are no tours
	LowestOccupancyTour(ctx context.Context) (*domain.TourOccupancy, error)
}
