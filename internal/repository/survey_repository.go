package repository

import (
	"context"

	"github.com/unalcansuu/kds-jolly/internal/domain"
)

// Logical survey answer fields. Physical column names vary between
// deployments and are resolved against the live schema; see ColumnResolver.
const (
	FieldPriorityFeature    = "priority_feature"
	FieldActivityPreference = "activity_preference"
	FieldCampaignImpact     = "campaign_impact"
	FieldVacationFrequency  = "vacation_frequency"
)

// SurveyRepository provides the aggregates behind survey analytics. Methods
// taking a logical field degrade to an empty result when no matching column
// exists in the deployed schema.
type SurveyRepository interface {
	// AgeCounts counts customers per exact age; null ages are excluded
	AgeCounts(ctx context.Context) ([]domain.AgeCount, error)
	// AgeTypeCounts counts reservations per (exact age, tour type)
	AgeTypeCounts(ctx context.Context) ([]domain.AgeTypeCount, error)
	// AgeCampaignCounts splits each exact age's reservations by campaign
	// attachment
	AgeCampaignCounts(ctx context.Context) ([]domain.AgeCampaignCount, error)
	// AnswerTally groups trimmed non-empty answers of the field and
	// returns the top limit by count, descending
	AnswerTally(ctx context.Context, field string, limit int) ([]domain.TextCount, error)
	// RawAnswers returns every trimmed non-empty answer of the field
	RawAnswers(ctx context.Context, field string) ([]string, error)
}
