package scoring

import (
	"testing"

	"github.com/tenderfindsa/tender-match-service/internal/models"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

func fullProfile() models.BusinessProfile {
	return models.BusinessProfile{
		IndustryCategories: []string{"Technology"},
		Provinces:          []string{"Gauteng"},
		CIDBGrading:        strPtr("Grade 8"),
		BBBEELevel:         strPtr("Level 2"),
		PreferredValueMin:  numPtr(100000),
		PreferredValueMax:  numPtr(5000000),
	}
}

func fullTender() models.Tender {
	return models.Tender{
		Category:      "Technology",
		Province:      "Gauteng",
		CIDBRequired:  strPtr("Grade 6"),
		BBBEERequired: strPtr("Level 4"),
		ValueMin:      numPtr(200000),
		ValueMax:      numPtr(1000000),
	}
}

func TestScoreAllFactorsSatisfied(t *testing.T) {
	result := Score(fullProfile(), fullTender())

	require.Equal(t, 100, result.Score)
	require.Equal(t, []string{
		"Excellent match for your business",
		"Industry match: Technology",
		"Location match: Gauteng",
		"Value range within your preferences",
		"CIDB qualification meets requirement (Grade 6)",
		"B-BBEE level meets requirement (Level 4)",
	}, result.Reasons)
}

func TestScoreNoApplicableFactors(t *testing.T) {
	result := Score(models.BusinessProfile{}, models.Tender{})

	require.Equal(t, 0, result.Score)
	require.Empty(t, result.Reasons)
}

func TestScoreNothingInCommon(t *testing.T) {
	// Category and province mismatch, tender carries no value/grade/level
	// data, so only two factors apply and neither is satisfied.
	tender := models.Tender{
		Category: "Construction",
		Province: "Western Cape",
	}

	result := Score(fullProfile(), tender)

	require.Equal(t, 0, result.Score)
	require.Empty(t, result.Reasons)
}

func TestScoreNormalisedOverApplicableFactors(t *testing.T) {
	// Only category and province apply; full credit on both is still 100.
	profile := models.BusinessProfile{
		IndustryCategories: []string{"IT Services"},
		Provinces:          []string{"Limpopo"},
	}
	tender := models.Tender{
		Category: "IT Services and Support",
		Province: "Limpopo",
	}

	result := Score(profile, tender)

	require.Equal(t, 100, result.Score)
	require.Equal(t, []string{
		"Excellent match for your business",
		"Industry match: IT Services and Support",
		"Location match: Limpopo",
	}, result.Reasons)
}

func TestScoreCategorySubstringBothDirections(t *testing.T) {
	tests := []struct {
		name     string
		profile  []string
		category string
		want     bool
	}{
		{"profile inside tender", []string{"construction"}, "Road Construction", true},
		{"tender inside profile", []string{"Road Construction Services"}, "Construction", true},
		{"case insensitive", []string{"TECHNOLOGY"}, "technology", true},
		{"no overlap", []string{"Catering"}, "Construction", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, categoryMatches(tt.profile, tt.category))
		})
	}
}

func TestScoreProvinceWildcard(t *testing.T) {
	require.True(t, provinceMatches([]string{"Gauteng"}, "Gauteng"))
	require.True(t, provinceMatches([]string{"National"}, "Eastern Cape"))
	require.True(t, provinceMatches([]string{"Gauteng"}, "National"))
	require.False(t, provinceMatches([]string{"Gauteng"}, "Free State"))
}

func TestScoreValueOverlapProportional(t *testing.T) {
	// Profile covers half the tender range: half the weight.
	require.InDelta(t, 12.5, valueOverlapCredit(0, 600000, 200000, 1000000), 1e-9)
	// Full coverage caps at the weight.
	require.InDelta(t, 25, valueOverlapCredit(0, 2000000, 200000, 1000000), 1e-9)
	// Disjoint ranges earn nothing.
	require.Zero(t, valueOverlapCredit(0, 100, 200, 300))
	// A point range inside the preferences earns full credit.
	require.InDelta(t, 25, valueOverlapCredit(0, 1000, 500, 500), 1e-9)
}

func TestScoreValueOverlapMonotonic(t *testing.T) {
	// Widening the profile window never decreases the credit.
	previous := 0.0
	for _, max := range []float64{300000, 500000, 800000, 1000000, 2000000} {
		credit := valueOverlapCredit(200000, max, 200000, 1000000)
		require.GreaterOrEqual(t, credit, previous)
		previous = credit
	}
}

func TestScoreCIDBGradeMeetsOrExceeds(t *testing.T) {
	profile := models.BusinessProfile{CIDBGrading: strPtr("Grade 8")}

	for requirement, want := range map[string]int{
		"Grade 6": 100,
		"Grade 8": 100,
		"Grade 9": 0,
	} {
		tender := models.Tender{CIDBRequired: strPtr(requirement)}
		require.Equal(t, want, Score(profile, tender).Score, "requirement %s", requirement)
	}
}

func TestScoreBBBEELevelInequalityReversed(t *testing.T) {
	profile := models.BusinessProfile{BBBEELevel: strPtr("Level 2")}

	for requirement, want := range map[string]int{
		"Level 4": 100,
		"Level 2": 100,
		"Level 1": 0,
	} {
		tender := models.Tender{BBBEERequired: strPtr(requirement)}
		require.Equal(t, want, Score(profile, tender).Score, "requirement %s", requirement)
	}
}

func TestScoreUnparseableGradeIsInapplicable(t *testing.T) {
	profile := models.BusinessProfile{
		IndustryCategories: []string{"Construction"},
		CIDBGrading:        strPtr("Grade 8"),
	}
	tender := models.Tender{
		Category:     "Construction",
		CIDBRequired: strPtr("Required"),
	}

	// The grade factor drops out, leaving only the satisfied category factor.
	result := Score(profile, tender)
	require.Equal(t, 100, result.Score)
	require.Equal(t, []string{
		"Excellent match for your business",
		"Industry match: Construction",
	}, result.Reasons)
}

func TestScoreHeadlines(t *testing.T) {
	profile := models.BusinessProfile{
		IndustryCategories: []string{"Security"},
		Provinces:          []string{"Gauteng"},
	}

	good := Score(profile, models.Tender{Category: "Security Services", Province: "National"})
	require.Equal(t, 100, good.Score)
	require.Equal(t, "Excellent match for your business", good.Reasons[0])

	// Category satisfied, province not: 30 of 50 points = 60.
	partial := Score(profile, models.Tender{Category: "Security Services", Province: "Free State"})
	require.Equal(t, 60, partial.Score)
	require.Equal(t, []string{
		"Potential match for your business",
		"Industry match: Security Services",
	}, partial.Reasons)

	potential := Score(models.BusinessProfile{
		IndustryCategories: []string{"Security"},
		Provinces:          []string{"Gauteng"},
		PreferredValueMin:  numPtr(0),
		PreferredValueMax:  numPtr(1000),
	}, models.Tender{
		Category: "Cleaning",
		Province: "Gauteng",
		ValueMin: numPtr(0),
		ValueMax: numPtr(500),
	})
	// Province 20 + value 25 of 75 applicable points = 60.
	require.Equal(t, 60, potential.Score)
	require.Equal(t, []string{
		"Potential match for your business",
		"Location match: Gauteng",
		"Value range within your preferences",
	}, potential.Reasons)
}

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		label string
		want  int
		ok    bool
	}{
		{"Grade 8", 8, true},
		{"Level 1", 1, true},
		{"CIDB Grade 6 or higher", 6, true},
		{"Required", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		n, ok := extractNumber(tt.label)
		require.Equal(t, tt.ok, ok, tt.label)
		require.Equal(t, tt.want, n, tt.label)
	}
}
