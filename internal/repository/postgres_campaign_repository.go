package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unalcansuu/kds-jolly/internal/domain"
)

// PostgresCampaignRepository implements CampaignRepository using PostgreSQL
type PostgresCampaignRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCampaignRepository creates a new PostgresCampaignRepository
func NewPostgresCampaignRepository(pool *pgxpool.Pool) *PostgresCampaignRepository {
	return &PostgresCampaignRepository{pool: pool}
}

// GetByID returns a single campaign, or nil when it does not exist
func (r *PostgresCampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	query := `
		SELECT kampanya_id, kampanya_adi, COALESCE(indirim_orani, 0),
		       baslangic_tarihi, bitis_tarihi
		FROM kampanyalar
		WHERE kampanya_id = $1
	`
	campaign := &domain.Campaign{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.DiscountRate,
		&campaign.StartDate,
		&campaign.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return campaign, nil
}

// Share aggregates campaign attachment over all reservations
func (r *PostgresCampaignRepository) Share(ctx context.Context) (*domain.CampaignShare, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE kampanya_id IS NOT NULL),
		       COALESCE(SUM(kar) FILTER (WHERE kampanya_id IS NOT NULL), 0)
		FROM rezervasyon
	`
	share := &domain.CampaignShare{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&share.TotalReservations,
		&share.CampaignReservations,
		&share.CampaignProfit,
	)
	if err != nil {
		return nil, err
	}
	return share, nil
}

// LowOccupancyCampaignTourCount counts distinct tours with campaign
// reservations and occupancy below the threshold
func (r *PostgresCampaignRepository) LowOccupancyCampaignTourCount(ctx context.Context, threshold float64) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT t.tur_id)
		FROM rezervasyon r
		JOIN turlar t ON t.tur_id = r.tur_id
		WHERE r.kampanya_id IS NOT NULL AND t.doluluk_orani < $1
	`
	var count int64
	err := r.pool.QueryRow(ctx, query, threshold).Scan(&count)
	return count, err
}

// ComparisonSides aggregates both reservation populations. Sides with no
// rows come back zero-filled rather than missing.
func (r *PostgresCampaignRepository) ComparisonSides(ctx context.Context) (*domain.ComparisonSide, *domain.ComparisonSide, error) {
	query := `
		SELECT (r.kampanya_id IS NOT NULL) AS attached,
		       COUNT(*),
		       COALESCE(SUM(r.kar), 0),
		       COALESCE(AVG(r.kar), 0),
		       COALESCE(AVG(t.doluluk_orani), 0)
		FROM rezervasyon r
		JOIN turlar t ON t.tur_id = r.tur_id
		GROUP BY attached
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	attached := &domain.ComparisonSide{}
	detached := &domain.ComparisonSide{}
	for rows.Next() {
		var isAttached bool
		side := &domain.ComparisonSide{}
		if err := rows.Scan(&isAttached, &side.Reservations, &side.TotalProfit, &side.AvgProfit, &side.AvgOccupancy); err != nil {
			return nil, nil, err
		}
		if isAttached {
			attached = side
		} else {
			detached = side
		}
	}
	return attached, detached, rows.Err()
}

// ROIAggregates returns per-campaign profit and granted discount totals.
// The discount amount follows the granted-discount definition:
// reservation price * campaign discount% / 100, summed.
func (r *PostgresCampaignRepository) ROIAggregates(ctx context.Context) ([]domain.CampaignROI, error) {
	query := `
		SELECT c.kampanya_id, c.kampanya_adi, COALESCE(c.indirim_orani, 0),
		       COALESCE(SUM(r.kar), 0),
		       COALESCE(SUM(r.toplam_fiyat * c.indirim_orani / 100), 0)
		FROM kampanyalar c
		LEFT JOIN rezervasyon r ON r.kampanya_id = c.kampanya_id
		GROUP BY c.kampanya_id, c.kampanya_adi, c.indirim_orani
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aggregates := make([]domain.CampaignROI, 0)
	for rows.Next() {
		var roi domain.CampaignROI
		if err := rows.Scan(&roi.CampaignID, &roi.CampaignName, &roi.DiscountRate, &roi.TotalProfit, &roi.DiscountAmount); err != nil {
			return nil, err
		}
		aggregates = append(aggregates, roi)
	}
	return aggregates, rows.Err()
}

// TourWindows counts each campaign tour's reservations strictly before
// start and strictly after end. Only tours with at least one reservation
// under the campaign participate.
func (r *PostgresCampaignRepository) TourWindows(ctx context.Context, campaignID int64, start, end time.Time) ([]domain.CampaignTourWindow, error) {
	query := `
		SELECT t.tur_id, t.tur_adi, COALESCE(t.kapasite, 0),
		       COUNT(*) FILTER (WHERE r.rezervasyon_tarihi < $2),
		       COUNT(*) FILTER (WHERE r.rezervasyon_tarihi > $3)
		FROM turlar t
		JOIN rezervasyon r ON r.tur_id = t.tur_id
		WHERE t.tur_id IN (
			SELECT DISTINCT tur_id FROM rezervasyon WHERE kampanya_id = $1
		)
		GROUP BY t.tur_id, t.tur_adi, t.kapasite
	`
	rows, err := r.pool.Query(ctx, query, campaignID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	windows := make([]domain.CampaignTourWindow, 0)
	for rows.Next() {
		w := domain.CampaignTourWindow{CampaignID: campaignID}
		if err := rows.Scan(&w.TourID, &w.TourName, &w.Capacity, &w.BeforeCount, &w.AfterCount); err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

// AllTourWindows computes before/after counts for every campaign x tour
// pair, each pair using its campaign's own date window
func (r *PostgresCampaignRepository) AllTourWindows(ctx context.Context) ([]domain.CampaignTourWindow, error) {
	query := `
		SELECT c.kampanya_id, c.kampanya_adi, t.tur_id, t.tur_adi, COALESCE(t.kapasite, 0),
		       COUNT(*) FILTER (WHERE r.rezervasyon_tarihi < c.baslangic_tarihi),
		       COUNT(*) FILTER (WHERE r.rezervasyon_tarihi > c.bitis_tarihi)
		FROM kampanyalar c
		JOIN (
			SELECT DISTINCT kampanya_id, tur_id
			FROM rezervasyon
			WHERE kampanya_id IS NOT NULL
		) p ON p.kampanya_id = c.kampanya_id
		JOIN turlar t ON t.tur_id = p.tur_id
		JOIN rezervasyon r ON r.tur_id = t.tur_id
		GROUP BY c.kampanya_id, c.kampanya_adi, t.tur_id, t.tur_adi, t.kapasite
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	windows := make([]domain.CampaignTourWindow, 0)
	for rows.Next() {
		var w domain.CampaignTourWindow
		if err := rows.Scan(&w.CampaignID, &w.CampaignName, &w.TourID, &w.TourName, &w.Capacity, &w.BeforeCount, &w.AfterCount); err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

// Reservations returns the simulation inputs for a campaign's reservations.
// Unit price and cost come from the tour; party size defaults to 1.
func (r *PostgresCampaignRepository) Reservations(ctx context.Context, campaignID int64) ([]domain.SimReservation, error) {
	query := `
		SELECT r.rezervasyon_id, COALESCE(t.fiyat, 0), COALESCE(t.maliyet, 0),
		       COALESCE(r.kisi_sayisi, 1), COALESCE(r.kar, 0)
		FROM rezervasyon r
		JOIN turlar t ON t.tur_id = r.tur_id
		WHERE r.kampanya_id = $1
	`
	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.SimReservation, 0)
	for rows.Next() {
		var sr domain.SimReservation
		if err := rows.Scan(&sr.ReservationID, &sr.Price, &sr.Cost, &sr.PartySize, &sr.Profit); err != nil {
			return nil, err
		}
		reservations = append(reservations, sr)
	}
	return reservations, rows.Err()
}

// MatrixCells returns campaign x tour-type aggregates
func (r *PostgresCampaignRepository) MatrixCells(ctx context.Context) ([]domain.MatrixCell, error) {
	query := `
		SELECT c.kampanya_adi, COALESCE(t.tur_turu, ''),
		       COUNT(*),
		       COALESCE(SUM(r.kar), 0),
		       COALESCE(AVG(r.kar), 0),
		       COALESCE(AVG(t.doluluk_orani), 0)
		FROM rezervasyon r
		JOIN kampanyalar c ON c.kampanya_id = r.kampanya_id
		JOIN turlar t ON t.tur_id = r.tur_id
		GROUP BY c.kampanya_adi, t.tur_turu
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cells := make([]domain.MatrixCell, 0)
	for rows.Next() {
		var cell domain.MatrixCell
		if err := rows.Scan(&cell.CampaignName, &cell.TourType, &cell.Reservations, &cell.TotalProfit, &cell.AvgProfit, &cell.AvgOccupancy); err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	return cells, rows.Err()
}
