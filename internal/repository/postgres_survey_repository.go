package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unalcansuu/kds-jolly/internal/domain"
)

// PostgresSurveyRepository implements SurveyRepository using PostgreSQL.
// Free-text answer columns are resolved against the live schema; a report
// whose column is absent degrades to an empty result.
type PostgresSurveyRepository struct {
	pool     *pgxpool.Pool
	resolver *ColumnResolver
}

// NewPostgresSurveyRepository creates a new PostgresSurveyRepository
func NewPostgresSurveyRepository(pool *pgxpool.Pool) *PostgresSurveyRepository {
	return &PostgresSurveyRepository{
		pool:     pool,
		resolver: NewColumnResolver(pool, "anket_musteri", surveyColumnCandidates),
	}
}

// AgeCounts counts customers per exact age
func (r *PostgresSurveyRepository) AgeCounts(ctx context.Context) ([]domain.AgeCount, error) {
	query := `
		SELECT yas, COUNT(*)
		FROM musteriler
		WHERE yas IS NOT NULL
		GROUP BY yas
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]domain.AgeCount, 0)
	for rows.Next() {
		var ac domain.AgeCount
		if err := rows.Scan(&ac.Age, &ac.Count); err != nil {
			return nil, err
		}
		counts = append(counts, ac)
	}
	return counts, rows.Err()
}

// AgeTypeCounts counts reservations per (exact age, tour type)
func (r *PostgresSurveyRepository) AgeTypeCounts(ctx context.Context) ([]domain.AgeTypeCount, error) {
	query := `
		SELECT m.yas, COALESCE(t.tur_turu, ''), COUNT(*)
		FROM rezervasyon r
		JOIN musteriler m ON m.musteri_id = r.musteri_id
		JOIN turlar t ON t.tur_id = r.tur_id
		WHERE m.yas IS NOT NULL
		GROUP BY m.yas, t.tur_turu
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]domain.AgeTypeCount, 0)
	for rows.Next() {
		var atc domain.AgeTypeCount
		if err := rows.Scan(&atc.Age, &atc.TourType, &atc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, atc)
	}
	return counts, rows.Err()
}

// AgeCampaignCounts splits each exact age's reservations by campaign
// attachment
func (r *PostgresSurveyRepository) AgeCampaignCounts(ctx context.Context) ([]domain.AgeCampaignCount, error) {
	query := `
		SELECT m.yas,
		       COUNT(*) FILTER (WHERE r.kampanya_id IS NOT NULL),
		       COUNT(*) FILTER (WHERE r.kampanya_id IS NULL)
		FROM rezervasyon r
		JOIN musteriler m ON m.musteri_id = r.musteri_id
		WHERE m.yas IS NOT NULL
		GROUP BY m.yas
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]domain.AgeCampaignCount, 0)
	for rows.Next() {
		var acc domain.AgeCampaignCount
		if err := rows.Scan(&acc.Age, &acc.WithCampaign, &acc.Without); err != nil {
			return nil, err
		}
		counts = append(counts, acc)
	}
	return counts, rows.Err()
}

// AnswerTally groups trimmed non-empty answers of the field, top limit by
// count descending. Returns an empty slice when the column is absent.
func (r *PostgresSurveyRepository) AnswerTally(ctx context.Context, field string, limit int) ([]domain.TextCount, error) {
	column, ok, err := r.resolver.Resolve(ctx, field)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.TextCount{}, nil
	}

	// The column name comes from the fixed candidate table, never from
	// request input, so interpolation is safe here.
	query := fmt.Sprintf(`
		SELECT TRIM(%[1]s) AS answer, COUNT(*) AS total
		FROM anket_musteri
		WHERE %[1]s IS NOT NULL AND TRIM(%[1]s) <> ''
		GROUP BY answer
		ORDER BY total DESC
		LIMIT $1
	`, column)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tally := make([]domain.TextCount, 0)
	for rows.Next() {
		var tc domain.TextCount
		if err := rows.Scan(&tc.Answer, &tc.Count); err != nil {
			return nil, err
		}
		tally = append(tally, tc)
	}
	return tally, rows.Err()
}

// RawAnswers returns every trimmed non-empty answer of the field. Returns
// an empty slice when the column is absent.
func (r *PostgresSurveyRepository) RawAnswers(ctx context.Context, field string) ([]string, error) {
	column, ok, err := r.resolver.Resolve(ctx, field)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}

	query := fmt.Sprintf(`
		SELECT TRIM(%[1]s::text)
		FROM anket_musteri
		WHERE %[1]s IS NOT NULL AND TRIM(%[1]s::text) <> ''
	`, column)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make([]string, 0)
	for rows.Next() {
		var answer string
		if err := rows.Scan(&answer); err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, rows.Err()
}
