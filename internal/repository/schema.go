package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ColumnResolver maps logical field names to physical column names. Survey
// answer columns differ between deployments, so each logical field carries
// an ordered candidate list; the first candidate present in the live schema
// wins. Resolution runs once per process against information_schema.
type ColumnResolver struct {
	pool       *pgxpool.Pool
	table      string
	candidates map[string][]string

	once     sync.Once
	resolved map[string]string
	err      error
}

// surveyColumnCandidates lists acceptable physical names per logical survey
// field, in preference order.
var surveyColumnCandidates = map[string][]string{
	FieldPriorityFeature:    {"oncelikli_ozellik", "oncelik_ozellik", "onemli_ozellik"},
	FieldActivityPreference: {"aktivite_tercihi", "tercih_edilen_aktivite"},
	FieldCampaignImpact:     {"kampanya_etkisi", "kampanya_etki"},
	FieldVacationFrequency:  {"tatil_sikligi", "yillik_tatil_sayisi"},
}

// NewColumnResolver creates a resolver for one table
func NewColumnResolver(pool *pgxpool.Pool, table string, candidates map[string][]string) *ColumnResolver {
	return &ColumnResolver{
		pool:       pool,
		table:      table,
		candidates: candidates,
	}
}

// Resolve returns the physical column for a logical field. The second
// return value is false when the deployed schema has no acceptable column,
// which callers treat as "feature unavailable", not as an error.
func (r *ColumnResolver) Resolve(ctx context.Context, logical string) (string, bool, error) {
	r.once.Do(func() {
		r.resolved, r.err = r.introspect(ctx)
	})
	if r.err != nil {
		return "", false, r.err
	}
	column, ok := r.resolved[logical]
	return column, ok, nil
}

func (r *ColumnResolver) introspect(ctx context.Context) (map[string]string, error) {
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = $1
	`
	rows, err := r.pool.Query(ctx, query, r.table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	resolved := make(map[string]string, len(r.candidates))
	for logical, names := range r.candidates {
		for _, name := range names {
			if present[name] {
				resolved[logical] = name
				break
			}
		}
	}
	return resolved, nil
}
