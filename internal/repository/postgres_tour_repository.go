package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unalcansuu/kds-jolly/internal/domain"
)

// PostgresTourRepository implements TourRepository using PostgreSQL
type PostgresTourRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTourRepository creates a new PostgresTourRepository
func NewPostgresTourRepository(pool *pgxpool.Pool) *PostgresTourRepository {
	return &PostgresTourRepository{pool: pool}
}

// GetByID returns a single tour, or nil when it does not exist
func (r *PostgresTourRepository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	query := `
		SELECT tur_id, tur_adi, COALESCE(tur_turu, ''), COALESCE(kapasite, 0),
		       COALESCE(fiyat, 0), COALESCE(maliyet, 0), sure_gun, COALESCE(doluluk_orani, 0)
		FROM turlar
		WHERE tur_id = $1
	`
	tour := &domain.Tour{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&tour.ID,
		&tour.Name,
		&tour.Type,
		&tour.Capacity,
		&tour.Price,
		&tour.Cost,
		&tour.DurationDays,
		&tour.OccupancyRate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tour, nil
}

// ReservationCount counts all reservations of one tour
func (r *PostgresTourRepository) ReservationCount(ctx context.Context, tourID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM rezervasyon WHERE tur_id = $1`, tourID).Scan(&count)
	return count, err
}

// LowOccupancyTours returns tours with occupancy <= threshold, ascending
func (r *PostgresTourRepository) LowOccupancyTours(ctx context.Context, threshold float64) ([]domain.TourOccupancy, error) {
	query := `
		SELECT tur_id, tur_adi, COALESCE(doluluk_orani, 0)
		FROM turlar
		WHERE doluluk_orani <= $1
		ORDER BY doluluk_orani ASC
	`
	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tours := make([]domain.TourOccupancy, 0)
	for rows.Next() {
		var tour domain.TourOccupancy
		if err := rows.Scan(&tour.TourID, &tour.TourName, &tour.Occupancy); err != nil {
			return nil, err
		}
		tours = append(tours, tour)
	}
	return tours, rows.Err()
}

// CountByType counts tours per tour type
func (r *PostgresTourRepository) CountByType(ctx context.Context) ([]domain.TypeCount, error) {
	query := `
		SELECT COALESCE(tur_turu, ''), COUNT(*)
		FROM turlar
		GROUP BY tur_turu
	`
	return r.queryTypeCounts(ctx, query)
}

// ReservationCountByType counts reservations per tour type, descending
func (r *PostgresTourRepository) ReservationCountByType(ctx context.Context) ([]domain.TypeCount, error) {
	query := `
		SELECT COALESCE(t.tur_turu, ''), COUNT(*) AS reservations
		FROM rezervasyon r
		JOIN turlar t ON t.tur_id = r.tur_id
		GROUP BY t.tur_turu
		ORDER BY reservations DESC
	`
	return r.queryTypeCounts(ctx, query)
}

func (r *PostgresTourRepository) queryTypeCounts(ctx context.Context, query string) ([]domain.TypeCount, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]domain.TypeCount, 0)
	for rows.Next() {
		var tc domain.TypeCount
		if err := rows.Scan(&tc.TourType, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

// AvgOccupancyByType averages stored occupancy per tour type, descending
func (r *PostgresTourRepository) AvgOccupancyByType(ctx context.Context) ([]domain.TypeOccupancy, error) {
	query := `
		SELECT COALESCE(tur_turu, ''), COALESCE(AVG(doluluk_orani), 0) AS avg_occupancy
		FROM turlar
		GROUP BY tur_turu
		ORDER BY avg_occupancy DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	occupancies := make([]domain.TypeOccupancy, 0)
	for rows.Next() {
		var to domain.TypeOccupancy
		if err := rows.Scan(&to.TourType, &to.AvgOccupancy); err != nil {
			return nil, err
		}
		occupancies = append(occupancies, to)
	}
	return occupancies, rows.Err()
}

// DurationStats aggregates reservations per exact tour duration. Banding
// happens in the service layer so the fixed band list can be zero-filled.
func (r *PostgresTourRepository) DurationStats(ctx context.Context) ([]domain.DurationStats, error) {
	query := `
		SELECT t.sure_gun,
		       COUNT(*),
		       COUNT(DISTINCT t.tur_id),
		       COUNT(*) FILTER (WHERE EXTRACT(ISODOW FROM r.rezervasyon_tarihi) IN (6, 7))
		FROM rezervasyon r
		JOIN turlar t ON t.tur_id = r.tur_id
		WHERE t.sure_gun IS NOT NULL
		GROUP BY t.sure_gun
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]domain.DurationStats, 0)
	for rows.Next() {
		var ds domain.DurationStats
		if err := rows.Scan(&ds.DurationDays, &ds.Reservations, &ds.DistinctTours, &ds.Weekend); err != nil {
			return nil, err
		}
		stats = append(stats, ds)
	}
	return stats, rows.Err()
}

// MonthlyTrend counts reservations per (year, month, tour type)
func (r *PostgresTourRepository) MonthlyTrend(ctx context.Context, from time.Time) ([]domain.TrendPoint, error) {
	query := `
		SELECT EXTRACT(YEAR FROM r.rezervasyon_tarihi)::int AS year,
		       EXTRACT(MONTH FROM r.rezervasyon_tarihi)::int AS month,
		       COALESCE(t.tur_turu, ''),
		       COUNT(*)
		FROM rezervasyon r
		JOIN turlar t ON t.tur_id = r.tur_id
		WHERE r.rezervasyon_tarihi >= $1
		GROUP BY year, month, t.tur_turu
		ORDER BY year, month
	`
	rows, err := r.pool.Query(ctx, query, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]domain.TrendPoint, 0)
	for rows.Next() {
		var tp domain.TrendPoint
		if err := rows.Scan(&tp.Year, &tp.Month, &tp.TourType, &tp.Count); err != nil {
			return nil, err
		}
		points = append(points, tp)
	}
	return points, rows.Err()
}
