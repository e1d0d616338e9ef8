package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tenderfindsa/tender-match-service/internal/models"
)

// Factor weights. A factor only participates when both the profile and the
// tender carry data for it, so incomplete records are not penalised.
const (
	categoryWeight = 30
	provinceWeight = 20
	valueWeight    = 25
	cidbWeight     = 15
	bbbeeWeight    = 10
)

// NationalProvince matches any province, on either side.
const NationalProvince = "National"

var numberPattern = regexp.MustCompile(`\d+`)

// Result is the outcome of scoring one (profile, tender) pair.
type Result struct {
	Score   int
	Reasons []string
}

// Score computes the compatibility between a business profile and a tender as
// a 0-100 percentage plus one reason per satisfied factor, in factor order.
// The score is normalised over the factors applicable to the pair, so full
// credit on every applicable factor yields 100 no matter how many there were.
// Pure and deterministic.
func Score(profile models.BusinessProfile, tender models.Tender) Result {
	var earned float64
	var applicable int
	var reasons []string

	if len(profile.IndustryCategories) > 0 && tender.Category != "" {
		applicable += categoryWeight
		if categoryMatches(profile.IndustryCategories, tender.Category) {
			earned += categoryWeight
			reasons = append(reasons, fmt.Sprintf("Industry match: %s", tender.Category))
		}
	}

	if len(profile.Provinces) > 0 && tender.Province != "" {
		applicable += provinceWeight
		if provinceMatches(profile.Provinces, tender.Province) {
			earned += provinceWeight
			reasons = append(reasons, fmt.Sprintf("Location match: %s", tender.Province))
		}
	}

	if profile.PreferredValueMin != nil && profile.PreferredValueMax != nil &&
		tender.ValueMin != nil && tender.ValueMax != nil {
		applicable += valueWeight
		if credit := valueOverlapCredit(
			*profile.PreferredValueMin, *profile.PreferredValueMax,
			*tender.ValueMin, *tender.ValueMax); credit > 0 {
			earned += credit
			reasons = append(reasons, "Value range within your preferences")
		}
	}

	if profile.CIDBGrading != nil && tender.CIDBRequired != nil {
		profileGrade, okProfile := extractNumber(*profile.CIDBGrading)
		requiredGrade, okRequired := extractNumber(*tender.CIDBRequired)
		if okProfile && okRequired {
			applicable += cidbWeight
			// Higher CIDB grade means higher capacity; the profile must
			// meet or exceed the requirement.
			if profileGrade >= requiredGrade {
				earned += cidbWeight
				reasons = append(reasons, fmt.Sprintf("CIDB qualification meets requirement (%s)", *tender.CIDBRequired))
			}
		}
	}

	if profile.BBBEELevel != nil && tender.BBBEERequired != nil {
		profileLevel, okProfile := extractNumber(*profile.BBBEELevel)
		requiredLevel, okRequired := extractNumber(*tender.BBBEERequired)
		if okProfile && okRequired {
			applicable += bbbeeWeight
			// Lower B-BBEE level means higher compliance; the profile must
			// be at or below the required level.
			if profileLevel <= requiredLevel {
				earned += bbbeeWeight
				reasons = append(reasons, fmt.Sprintf("B-BBEE level meets requirement (%s)", *tender.BBBEERequired))
			}
		}
	}

	if applicable == 0 {
		return Result{Score: 0}
	}

	score := int(math.Round(earned / float64(applicable) * 100))

	switch {
	case score >= 90:
		reasons = append([]string{"Excellent match for your business"}, reasons...)
	case score >= 70:
		reasons = append([]string{"Good match for your business"}, reasons...)
	case score >= 50:
		reasons = append([]string{"Potential match for your business"}, reasons...)
	}

	return Result{Score: score, Reasons: reasons}
}

// categoryMatches reports whether any profile category and the tender category
// contain each other, case-insensitively, in either direction.
func categoryMatches(categories []string, tenderCategory string) bool {
	tc := strings.ToLower(tenderCategory)
	for _, category := range categories {
		c := strings.ToLower(category)
		if strings.Contains(tc, c) || strings.Contains(c, tc) {
			return true
		}
	}
	return false
}

func provinceMatches(provinces []string, tenderProvince string) bool {
	if tenderProvince == NationalProvince {
		return true
	}
	for _, province := range provinces {
		if province == tenderProvince || province == NationalProvince {
			return true
		}
	}
	return false
}

// valueOverlapCredit returns the value-factor credit, proportional to how much
// of the tender's range the profile's preferred range covers, capped at the
// full weight. Disjoint ranges earn nothing. A zero-width tender range that
// falls inside the preferred range earns full credit.
func valueOverlapCredit(profileMin, profileMax, tenderMin, tenderMax float64) float64 {
	if profileMin > tenderMax || profileMax < tenderMin {
		return 0
	}
	tenderRange := tenderMax - tenderMin
	if tenderRange <= 0 {
		return valueWeight
	}
	overlap := math.Min(profileMax, tenderMax) - math.Max(profileMin, tenderMin)
	return math.Min(valueWeight, overlap/tenderRange*valueWeight)
}

// extractNumber parses the first integer substring of a grade or level label,
// e.g. "Grade 8" -> 8. Labels without a number make the factor inapplicable.
func extractNumber(label string) (int, bool) {
	digits := numberPattern.FindString(label)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
