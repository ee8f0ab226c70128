package service

import (
	"context"

	"github.com/unalcansuu/kds-jolly/internal/dto"
	"github.com/unalcansuu/kds-jolly/internal/repository"
)

// Tally sizes of the free-text survey reports
const (
	priorityFeatureLimit    = 10
	activityPreferenceLimit = 8
)

// SurveyService computes survey analytics: age-band demographics and
// free-text answer tallies. Reports backed by an answer column missing from
// the deployed schema come back empty rather than failing.
type SurveyService interface {
	// AgeDistribution counts customers per age band
	AgeDistribution(ctx context.Context) (*dto.AgeDistributionResponse, error)
	// AgeTourHeatmap counts reservations per (age band, tour type)
	AgeTourHeatmap(ctx context.Context) (*dto.AgeTourHeatmapResponse, error)
	// AgeCampaignSensitivity splits each age band's reservations by
	// campaign attachment and names the most campaign-responsive band
	AgeCampaignSensitivity(ctx context.Context) (*dto.AgeCampaignSensitivityResponse, error)
	// PriorityFeatures tallies the top priority-feature answers
	PriorityFeatures(ctx context.Context) (*dto.TextTallyResponse, error)
	// ActivityPreferences tallies the top activity answers and surfaces
	// the leading one
	ActivityPreferences(ctx context.Context) (*dto.TextTallyResponse, error)
	// CampaignImpactDistribution buckets heuristic 0-5 impact scores
	CampaignImpactDistribution(ctx context.Context) (*dto.ImpactDistributionResponse, error)
	// VacationFrequency buckets yearly vacation counts
	VacationFrequency(ctx context.Context) (*dto.VacationFrequencyResponse, error)
}

type surveyService struct {
	repo repository.SurveyRepository
}

// NewSurveyService creates a new SurveyService
func NewSurveyService(repo repository.SurveyRepository) SurveyService {
	return &surveyService{repo: repo}
}

func (s *surveyService) AgeDistribution(ctx context.Context) (*dto.AgeDistributionResponse, error) {
	counts, err := s.repo.AgeCounts(ctx)
	if err != nil {
		return nil, err
	}

	byBand := make(map[string]int64, len(AgeBands))
	var total int64
	for _, count := range counts {
		band, ok := AgeBand(count.Age)
		if !ok {
			continue
		}
		byBand[band] += count.Count
		total += count.Count
	}

	bands := make([]dto.BandCount, 0, len(AgeBands))
	for _, band := range AgeBands {
		bands = append(bands, dto.BandCount{Band: band, Count: byBand[band]})
	}
	return &dto.AgeDistributionResponse{Bands: bands, Total: total}, nil
}

func (s *surveyService) AgeTourHeatmap(ctx context.Context) (*dto.AgeTourHeatmapResponse, error) {
	counts, err := s.repo.AgeTypeCounts(ctx)
	if err != nil {
		return nil, err
	}

	type cellKey struct {
		band     string
		tourType string
	}
	byCell := make(map[cellKey]int64)
	typeSet := make(map[string]bool)
	for _, count := range counts {
		band, ok := AgeBand(count.Age)
		if !ok {
			continue
		}
		byCell[cellKey{band, count.TourType}] += count.Count
		typeSet[count.TourType] = true
	}

	tourTypes := sortedKeys(typeSet)
	cells := make([]dto.HeatmapCell, 0, len(AgeBands)*len(tourTypes))
	var maxCell *dto.HeatmapCell
	for _, band := range AgeBands {
		for _, tourType := range tourTypes {
			cells = append(cells, dto.HeatmapCell{
				AgeBand:  band,
				TourType: tourType,
				Count:    byCell[cellKey{band, tourType}],
			})
			cell := &cells[len(cells)-1]
			if maxCell == nil || cell.Count > maxCell.Count {
				maxCell = cell
			}
		}
	}

	return &dto.AgeTourHeatmapResponse{
		AgeBands:  AgeBands,
		TourTypes: tourTypes,
		Cells:     cells,
		MaxCell:   maxCell,
	}, nil
}

func (s *surveyService) AgeCampaignSensitivity(ctx context.Context) (*dto.AgeCampaignSensitivityResponse, error) {
	counts, err := s.repo.AgeCampaignCounts(ctx)
	if err != nil {
		return nil, err
	}

	byBand := make(map[string]*dto.AgeCampaignBand, len(AgeBands))
	bands := make([]dto.AgeCampaignBand, len(AgeBands))
	for i, band := range AgeBands {
		bands[i] = dto.AgeCampaignBand{Band: band}
		byBand[band] = &bands[i]
	}

	for _, count := range counts {
		band, ok := AgeBand(count.Age)
		if !ok {
			continue
		}
		byBand[band].Kampanyali += count.WithCampaign
		byBand[band].Kampanyasiz += count.Without
	}

	topBand := ""
	topShare := -1.0
	for i := range bands {
		band := &bands[i]
		total := float64(band.Kampanyali + band.Kampanyasiz)
		band.KampanyaliYuzde = Percent(float64(band.Kampanyali), total)
		band.KampanyasizYuzde = Percent(float64(band.Kampanyasiz), total)
		if total > 0 && band.KampanyaliYuzde > topShare {
			topShare = band.KampanyaliYuzde
			topBand = band.Band
		}
	}

	return &dto.AgeCampaignSensitivityResponse{Bands: bands, TopBand: topBand}, nil
}

func (s *surveyService) PriorityFeatures(ctx context.Context) (*dto.TextTallyResponse, error) {
	return s.tally(ctx, repository.FieldPriorityFeature, priorityFeatureLimit, false)
}

func (s *surveyService) ActivityPreferences(ctx context.Context) (*dto.TextTallyResponse, error) {
	return s.tally(ctx, repository.FieldActivityPreference, activityPreferenceLimit, true)
}

func (s *surveyService) tally(ctx context.Context, field string, limit int, withTop bool) (*dto.TextTallyResponse, error) {
	tally, err := s.repo.AnswerTally(ctx, field, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AnswerCount, 0, len(tally))
	for _, entry := range tally {
		items = append(items, dto.AnswerCount{Answer: entry.Answer, Count: entry.Count})
	}

	response := &dto.TextTallyResponse{Items: items}
	if withTop && len(items) > 0 {
		response.Top = &items[0]
	}
	return response, nil
}

func (s *surveyService) CampaignImpactDistribution(ctx context.Context) (*dto.ImpactDistributionResponse, error) {
	answers, err := s.repo.RawAnswers(ctx, repository.FieldCampaignImpact)
	if err != nil {
		return nil, err
	}

	byBand := make(map[string]int64, len(ImpactBands))
	var scoreSum, scored int64
	for _, answer := range answers {
		score, ok := ParseImpactScore(answer)
		if !ok {
			continue
		}
		byBand[ImpactBand(score)]++
		scoreSum += int64(score)
		scored++
	}

	bands := make([]dto.BandCount, 0, len(ImpactBands))
	for _, band := range ImpactBands {
		bands = append(bands, dto.BandCount{Band: band, Count: byBand[band]})
	}

	var average float64
	if scored > 0 {
		average = Round1(float64(scoreSum) / float64(scored))
	}
	return &dto.ImpactDistributionResponse{Bands: bands, AverageScore: average}, nil
}

func (s *surveyService) VacationFrequency(ctx context.Context) (*dto.VacationFrequencyResponse, error) {
	answers, err := s.repo.RawAnswers(ctx, repository.FieldVacationFrequency)
	if err != nil {
		return nil, err
	}

	byBand := make(map[string]int64, len(VacationBands))
	for _, answer := range answers {
		band, ok := ParseVacationBand(answer)
		if !ok {
			continue
		}
		byBand[band]++
	}

	bands := make([]dto.BandCount, 0, len(VacationBands))
	for _, band := range VacationBands {
		bands = append(bands, dto.BandCount{Band: band, Count: byBand[band]})
	}
	return &dto.VacationFrequencyResponse{Bands: bands}, nil
}
