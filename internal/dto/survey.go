package dto

// BandCount is a generic (band label, count) pair
type BandCount struct {
	Band  string `json:"band"`
	Count int64  `json:"count"`
}

// AgeDistributionResponse counts customers per age band; under-18 and
// unknown ages are excluded from the total
type AgeDistributionResponse struct {
	Bands []BandCount `json:"bands"`
	Total int64       `json:"total"`
}

// HeatmapCell is one (age band, tour type) reservation count
type HeatmapCell struct {
	AgeBand  string `json:"ageBand"`
	TourType string `json:"tourType"`
	Count    int64  `json:"count"`
}

// AgeTourHeatmapResponse is the age band x tour type reservation grid
type AgeTourHeatmapResponse struct {
	AgeBands  []string      `json:"ageBands"`
	TourTypes []string      `json:"tourTypes"`
	Cells     []HeatmapCell `json:"cells"`
	MaxCell   *HeatmapCell  `json:"maxCell"`
}

// AgeCampaignBand splits one age band's reservations by campaign attachment
type AgeCampaignBand struct {
	Band             string  `json:"band"`
	Kampanyali       int64   `json:"kampanyali"`
	Kampanyasiz      int64   `json:"kampanyasiz"`
	KampanyaliYuzde  float64 `json:"kampanyaliYuzde"`
	KampanyasizYuzde float64 `json:"kampanyasizYuzde"`
}

// AgeCampaignSensitivityResponse reports campaign attachment per age band
// and names the band most responsive to campaigns
type AgeCampaignSensitivityResponse struct {
	Bands   []AgeCampaignBand `json:"bands"`
	TopBand string            `json:"topBand"`
}

// AnswerCount is one tallied free-text answer
type AnswerCount struct {
	Answer string `json:"answer"`
	Count  int64  `json:"count"`
}

// TextTallyResponse is a top-N free-text tally; Top is only populated for
// reports that surface a single leading answer
type TextTallyResponse struct {
	Items []AnswerCount `json:"items"`
	Top   *AnswerCount  `json:"top,omitempty"`
}

// ImpactDistributionResponse buckets campaign-impact scores into
// Low/Medium/High and reports the average valid score
type ImpactDistributionResponse struct {
	Bands        []BandCount `json:"bands"`
	AverageScore float64     `json:"averageScore"`
}

// VacationFrequencyResponse buckets yearly vacation counts into
// "1", "2", "3" and "4+"
type VacationFrequencyResponse struct {
	Bands []BandCount `json:"bands"`
}
