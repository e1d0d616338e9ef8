package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSyncTendersUpsertsFetchedReleases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tenders", r.URL.Path)
		require.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{
					"ocid": "ocds-123-1",
					"tender": {
						"title": "Road Maintenance",
						"description": "CIDB Grade 6 required. B-BBEE Level 2 preferred. Tax clearance needed.",
						"status": "active",
						"value": {"amount": 1000000, "currency": "ZAR"},
						"classification": {"description": "Civil Engineering"}
					},
					"buyer": {"name": "Gauteng Department of Roads"}
				},
				{
					"ocid": "ocds-123-2",
					"tender": {
						"title": "Cancelled Works",
						"description": "",
						"status": "cancelled"
					}
				}
			]
		}`))
	}))
	defer server.Close()

	repo := &stubTenderRepo{}
	svc := NewTenderSyncService(repo, zap.NewNop(), server.URL)

	require.NoError(t, svc.SyncTenders(context.Background()))
	require.Len(t, repo.upserted, 2)

	first := repo.upserted[0]
	require.NotNil(t, first.OCID)
	require.Equal(t, "ocds-123-1", *first.OCID)
	require.Equal(t, "Road Maintenance", first.Title)
	require.Equal(t, "Gauteng Department of Roads", first.Department)
	require.Equal(t, "Civil Engineering", first.Category)
	require.Equal(t, "Gauteng", first.Province)
	require.Equal(t, models.ActiveTender, first.Status)
	require.True(t, first.IsActive)
	require.NotNil(t, first.ValueMin)
	require.NotNil(t, first.ValueMax)
	require.InDelta(t, 800000, *first.ValueMin, 0.01)
	require.InDelta(t, 1200000, *first.ValueMax, 0.01)
	require.NotNil(t, first.CIDBRequired)
	require.Equal(t, "Grade 6", *first.CIDBRequired)
	require.NotNil(t, first.BBBEERequired)
	require.Equal(t, "Level 2", *first.BBBEERequired)
	require.Equal(t, []string{
		"CIDB Registration Required",
		"B-BBEE Certificate Required",
		"Tax Clearance Certificate",
	}, first.Requirements)

	second := repo.upserted[1]
	require.Equal(t, models.CancelledTender, second.Status)
	require.False(t, second.IsActive)
	require.Nil(t, second.ValueMin)
	require.Equal(t, "National", second.Province)
	// The requirements column is not nullable, so a keyword-free release must
	// carry an empty list rather than nil.
	require.NotNil(t, second.Requirements)
	require.Empty(t, second.Requirements)
}

func TestNormalizeReleaseWithoutKeywordsKeepsRequirementsNonNil(t *testing.T) {
	release := etendersRelease{
		OCID: "ocds-789-1",
		Tender: etendersTender{
			Title:       "Supply of Office Furniture",
			Description: "Supply and delivery of office furniture to the regional office.",
			Status:      "active",
		},
	}

	tender := normalizeRelease(release)
	require.NotNil(t, tender.Requirements)
	require.Empty(t, tender.Requirements)
	require.Nil(t, tender.CIDBRequired)
	require.Nil(t, tender.BBBEERequired)
}

func TestSyncTendersAPIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	repo := &stubTenderRepo{}
	svc := NewTenderSyncService(repo, zap.NewNop(), server.URL)

	err := svc.SyncTenders(context.Background())
	require.Error(t, err)
	require.Empty(t, repo.upserted)
}

func TestNormalizeReleaseFallbacks(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	release := etendersRelease{
		OCID: "ocds-456-1",
		Tender: etendersTender{
			Title:           "Clinic Upgrade",
			Status:          "complete",
			TenderPeriod:    &etendersPeriod{StartDate: &start, EndDate: &end},
			ProcuringEntity: &etendersParty{Name: "Western Cape Health"},
			Documents:       []etendersDocument{{URL: "https://example.org/doc.pdf", Title: "Bid document"}},
		},
	}

	tender := normalizeRelease(release)
	// The procuring entity fills in for a missing buyer.
	require.NotNil(t, tender.Requirements)
	require.Equal(t, "Western Cape Health", tender.Department)
	require.Equal(t, "Western Cape", tender.Province)
	require.Equal(t, models.ClosedTender, tender.Status)
	require.Equal(t, &start, tender.AdvertisedDate)
	require.Equal(t, &end, tender.ClosingDate)
	require.NotNil(t, tender.DocumentURL)
	require.Equal(t, "https://example.org/doc.pdf", *tender.DocumentURL)
}

func TestExtractProvince(t *testing.T) {
	tests := []struct {
		department string
		want       string
	}{
		{"Gauteng Department of Roads", "Gauteng"},
		{"KWAZULU-NATAL Treasury", "KwaZulu-Natal"},
		{"Department of eastern cape Education", "Eastern Cape"},
		{"National Treasury", "National"},
		{"", "National"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, extractProvince(tt.department), tt.department)
	}
}

func TestMapTenderStatus(t *testing.T) {
	require.Equal(t, models.ActiveTender, mapTenderStatus("active"))
	require.Equal(t, models.ClosedTender, mapTenderStatus("complete"))
	require.Equal(t, models.CancelledTender, mapTenderStatus("unsuccessful"))
	require.Equal(t, models.CancelledTender, mapTenderStatus("cancelled"))
	require.Equal(t, models.ActiveTender, mapTenderStatus("planning"))
}

func TestExtractCIDBRequirement(t *testing.T) {
	grade := extractCIDBRequirement("Bidders must hold CIDB Grade 7 or higher")
	require.NotNil(t, grade)
	require.Equal(t, "Grade 7", *grade)

	level := extractCIDBRequirement("cidb level 3 contractors only")
	require.NotNil(t, level)
	require.Equal(t, "Grade 3", *level)

	bare := extractCIDBRequirement("Valid CIDB registration required")
	require.NotNil(t, bare)
	require.Equal(t, "Required", *bare)

	require.Nil(t, extractCIDBRequirement("No special grading needed"))
}

func TestExtractBBBEERequirement(t *testing.T) {
	withLevel := extractBBBEERequirement("B-BBEE Level 1 contributors preferred")
	require.NotNil(t, withLevel)
	require.Equal(t, "Level 1", *withLevel)

	noDash := extractBBBEERequirement("BBBEE 4 certificate")
	require.NotNil(t, noDash)
	require.Equal(t, "Level 4", *noDash)

	bare := extractBBBEERequirement("Submit your b-bbee certificate")
	require.NotNil(t, bare)
	require.Equal(t, "Required", *bare)

	require.Nil(t, extractBBBEERequirement("Open to all bidders"))
}
