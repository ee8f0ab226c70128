package repository

import (
	"context"
	"time"

	"github.com/unalcansuu/kds-jolly/internal/domain"
)

// CampaignRepository provides the aggregates behind campaign analytics:
// attachment shares, ROI inputs, before/after occupancy windows and the
// per-reservation rows feeding what-if simulations.
type CampaignRepository interface {
	// GetByID returns a single campaign, or nil when it does not exist
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	// Share aggregates campaign attachment over all reservations
	Share(ctx context.Context) (*domain.CampaignShare, error)
	// LowOccupancyCampaignTourCount counts distinct tours that have
	// campaign reservations yet occupancy below the threshold
	LowOccupancyCampaignTourCount(ctx context.Context, threshold float64) (int64, error)
	// ComparisonSides aggregates the campaign-attached and non-attached
	// reservation populations; both sides are always non-nil
	ComparisonSides(ctx context.Context) (attached, detached *domain.ComparisonSide, err error)
	// ROIAggregates returns per-campaign profit and granted discount totals
	ROIAggregates(ctx context.Context) ([]domain.CampaignROI, error)
	// TourWindows counts, for every tour reserved under the campaign, its
	// reservations strictly before start and strictly after end
	TourWindows(ctx context.Context, campaignID int64, start, end time.Time) ([]domain.CampaignTourWindow, error)
	// AllTourWindows is TourWindows over every campaign x tour pair, using
	// each campaign's own date window
	AllTourWindows(ctx context.Context) ([]domain.CampaignTourWindow, error)
	// Reservations returns the simulation inputs for every reservation
	// attached to the campaign
	Reservations(ctx context.Context, campaignID int64) ([]domain.SimReservation, error)
	// MatrixCells returns campaign x tour-type aggregates for the impact
	// matrix
	MatrixCells(ctx context.Context) ([]domain.MatrixCell, error)
}
