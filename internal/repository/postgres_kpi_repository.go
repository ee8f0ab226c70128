package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unalcansuu/kds-jolly/internal/domain"
)

// PostgresKPIRepository implements KPIRepository using PostgreSQL
type PostgresKPIRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresKPIRepository creates a new PostgresKPIRepository
func NewPostgresKPIRepository(pool *pgxpool.Pool) *PostgresKPIRepository {
	return &PostgresKPIRepository{pool: pool}
}

// OverviewCounts returns the headline entity counts
func (r *PostgresKPIRepository) OverviewCounts(ctx context.Context) (*domain.OverviewCounts, error) {
	counts := &domain.OverviewCounts{}

	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM musteriler`).Scan(&counts.Customers); err != nil {
		return nil, err
	}
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM rezervasyon`).Scan(&counts.Reservations); err != nil {
		return nil, err
	}
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM turlar`).Scan(&counts.Tours); err != nil {
		return nil, err
	}
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT musteri_id) FROM anket_musteri`).Scan(&counts.SurveyParticipants); err != nil {
		return nil, err
	}

	return counts, nil
}

// ProfitBetween sums reservation profit for dates in [from, to)
func (r *PostgresKPIRepository) ProfitBetween(ctx context.Context, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(kar), 0)
		FROM rezervasyon
		WHERE rezervasyon_tarihi >= $1 AND rezervasyon_tarihi < $2
	`
	var profit float64
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&profit); err != nil {
		return 0, err
	}
	return profit, nil
}

// WindowStats aggregates one reservation window
func (r *PostgresKPIRepository) WindowStats(ctx context.Context, from, to time.Time) (*domain.WindowStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(kar), 0),
		       COUNT(*) FILTER (WHERE kampanya_id IS NOT NULL)
		FROM rezervasyon
		WHERE rezervasyon_tarihi >= $1 AND rezervasyon_tarihi < $2
	`
	stats := &domain.WindowStats{}
	err := r.pool.QueryRow(ctx, query, from, to).Scan(
		&stats.Count,
		&stats.TotalProfit,
		&stats.CampaignCount,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// TopProfitTour returns the tour with the highest summed profit in the window
func (r *PostgresKPIRepository) TopProfitTour(ctx context.Context, from, to time.Time) (*domain.TourProfit, error) {
	query := `
		SELECT t.tur_id, t.tur_adi, COALESCE(SUM(r.kar), 0) AS total_profit
		FROM rezervasyon r
		JOIN turlar t ON t.tur_id = r.tur_id
		WHERE r.rezervasyon_tarihi >= $1 AND r.rezervasyon_tarihi < $2
		GROUP BY t.tur_id, t.tur_adi
		ORDER BY total_profit DESC
		LIMIT 1
	`
	tour := &domain.TourProfit{}
	err := r.pool.QueryRow(ctx, query, from, to).Scan(&tour.TourID, &tour.TourName, &tour.TotalProfit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tour, nil
}

// LowestOccupancyReservedTour returns the lowest-occupancy tour among tours
// reserved in the window
func (r *PostgresKPIRepository) LowestOccupancyReservedTour(ctx context.Context, from, to time.Time) (*domain.TourOccupancy, error) {
	query := `
		SELECT t.tur_id, t.tur_adi, COALESCE(AVG(t.doluluk_orani), 0) AS occupancy
		FROM rezervasyon r
		JOIN turlar t ON t.tur_id = r.tur_id
		WHERE r.rezervasyon_tarihi >= $1 AND r.rezervasyon_tarihi < $2
		GROUP BY t.tur_id, t.tur_adi
		ORDER BY occupancy ASC
		LIMIT 1
	`
	return r.scanTourOccupancy(r.pool.QueryRow(ctx, query, from, to))
}

// LowestOccupancyTour returns the globally lowest-occupancy tour
func (r *PostgresKPIRepository) LowestOccupancyTour(ctx context.Context) (*domain.TourOccupancy, error) {
	query := `
		SELECT tur_id, tur_adi, COALESCE(doluluk_orani, 0) AS occupancy
		FROM turlar
		ORDER BY occupancy ASC
		LIMIT 1
	`
	return r.scanTourOccupancy(r.pool.QueryRow(ctx, query))
}

func (r *PostgresKPIRepository) scanTourOccupancy(row pgx.Row) (*domain.TourOccupancy, error) {
	tour := &domain.TourOccupancy{}
	err := row.Scan(&tour.TourID, &tour.TourName, &tour.Occupancy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tour, nil
}
