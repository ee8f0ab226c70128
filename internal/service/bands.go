package service

import (
	"strconv"
	"strings"
	"unicode"
)

// Fixed classification tables. Every banding rule lives here so endpoints
// answering similar questions cannot drift apart.

// Age bands; ages under 18 or unknown are excluded from age-based reports
var AgeBands = []string{"18-24", "25-34", "35-44", "45-54", "55+"}

// AgeBand maps an age to its band. The second return value is false for
// ages under 18, which every age-based report excludes.
func AgeBand(age int64) (string, bool) {
	switch {
	case age < 18:
		return "", false
	case age <= 24:
		return "18-24", true
	case age <= 34:
		return "25-34", true
	case age <= 44:
		return "35-44", true
	case age <= 54:
		return "45-54", true
	default:
		return "55+", true
	}
}

// Duration bands; tours with null duration are excluded upstream
var DurationBands = []string{"1-2 gün", "3-5 gün", "6+ gün"}

// DurationBand maps a tour duration in days to its band
func DurationBand(days int64) (string, bool) {
	switch {
	case days < 1:
		return "", false
	case days <= 2:
		return "1-2 gün", true
	case days <= 5:
		return "3-5 gün", true
	default:
		return "6+ gün", true
	}
}

// Occupancy alert thresholds. Tours above AlertThreshold never appear in
// the alerts report.
const (
	CriticalOccupancy = 40.0
	AlertThreshold    = 55.0
)

// OccupancyAlertLevel classifies an occupancy value at or below the alert
// threshold
func OccupancyAlertLevel(occupancy float64) string {
	if occupancy <= CriticalOccupancy {
		return "critical"
	}
	return "warning"
}

// Campaign-impact score bands over the 0-5 scale
var ImpactBands = []string{"Low", "Medium", "High"}

// ImpactBand maps a 0-5 impact score to its band
func ImpactBand(score int) string {
	switch {
	case score <= 1:
		return "Low"
	case score <= 3:
		return "Medium"
	default:
		return "High"
	}
}

// Vacation-frequency bands
var VacationBands = []string{"1", "2", "3", "4+"}

// normalizeAnswer lowercases a free-text answer with Turkish casing rules
// and trims surrounding space
func normalizeAnswer(answer string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, strings.TrimSpace(answer))
}

// firstDigit extracts the first decimal digit of a string
func firstDigit(s string) (int, bool) {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return int(r - '0'), true
		}
	}
	return 0, false
}

// impactRule is one entry of the ordered impact-score rule table
type impactRule struct {
	keywords []string
	fallback int // score when the answer carries no usable digit
	useDigit bool
}

// impactRules is evaluated top to bottom, first match wins. Negations and
// intensifiers must precede the bare "etkiledi" rule, which would otherwise
// swallow them.
var impactRules = []impactRule{
	{keywords: []string{"hiç", "etkilemedi", "etkisi olmadı"}, fallback: 0},
	{keywords: []string{"kesinlikle", "çok"}, fallback: 5, useDigit: true},
	{keywords: []string{"az", "biraz"}, fallback: 1},
	{keywords: []string{"orta", "kararsız"}, fallback: 3, useDigit: true},
	{keywords: []string{"etkiledi"}, fallback: 4},
}

// ParseImpactScore maps a mixed numeric/free-text campaign-impact answer to
// a 0-5 score. Unparseable answers are dropped from both the distribution
// and the average.
func ParseImpactScore(answer string) (int, bool) {
	normalized := normalizeAnswer(answer)
	if normalized == "" {
		return 0, false
	}

	// Pure numeric answers take the value directly, clamped to the scale
	if n, err := strconv.Atoi(normalized); err == nil {
		return clampScore(n), true
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(normalized, ",", "."), 64); err == nil {
		return clampScore(int(f)), true
	}

	for _, rule := range impactRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				if rule.useDigit {
					if d, ok := firstDigit(normalized); ok {
						return clampScore(d), true
					}
				}
				return rule.fallback, true
			}
		}
	}

	return 0, false
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 5 {
		return 5
	}
	return n
}

// vacationTextRules maps Turkish count words to bands, evaluated in order.
// "dört" must precede the smaller words so "dört ve üzeri" is not caught
// by a substring of another rule.
var vacationTextRules = []struct {
	keyword string
	band    string
}{
	{"dört", "4+"},
	{"üç", "3"},
	{"iki", "2"},
	{"bir", "1"},
}

// ParseVacationBand maps a vacation-frequency answer (count per year, as a
// number or Turkish count word) to one of the fixed bands. Counts of four
// or more clamp to "4+"; unparseable answers are dropped.
func ParseVacationBand(answer string) (string, bool) {
	normalized := normalizeAnswer(answer)
	if normalized == "" {
		return "", false
	}

	if n, err := strconv.Atoi(normalized); err == nil {
		return vacationBandFromCount(n)
	}
	if d, ok := firstDigit(normalized); ok {
		return vacationBandFromCount(d)
	}

	for _, rule := range vacationTextRules {
		if strings.Contains(normalized, rule.keyword) {
			return rule.band, true
		}
	}

	return "", false
}

func vacationBandFromCount(n int) (string, bool) {
	switch {
	case n < 1:
		return "", false
	case n >= 4:
		return "4+", true
	default:
		return strconv.Itoa(n), true
	}
}
