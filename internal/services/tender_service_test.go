package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/tenderfindsa/tender-match-service/internal/models"

	"github.com/stretchr/testify/require"
)

func TestFetchTendersRejectsUnknownStatus(t *testing.T) {
	svc := NewTenderService(&stubTenderRepo{})

	_, err := svc.FetchTenders(context.Background(), models.TenderFilter{Status: "archived"})
	require.Error(t, err)
	errorResponse, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, errorResponse.StatusCode)
}

func TestFetchTendersRejectsInvertedValueRange(t *testing.T) {
	svc := NewTenderService(&stubTenderRepo{})

	min, max := 100.0, 50.0
	_, err := svc.FetchTenders(context.Background(), models.TenderFilter{ValueMin: &min, ValueMax: &max})
	require.Error(t, err)
}

func TestFetchTendersPassesFilterThrough(t *testing.T) {
	repo := &stubTenderRepo{active: []models.Tender{{ID: "tender-1"}}}
	svc := NewTenderService(repo)

	tenders, err := svc.FetchTenders(context.Background(), models.TenderFilter{Status: "active", Limit: 20})
	require.NoError(t, err)
	require.Len(t, tenders, 1)
}

func TestGetTenderNotFound(t *testing.T) {
	svc := NewTenderService(&stubTenderRepo{})

	_, err := svc.GetTender(context.Background(), "missing")
	require.Error(t, err)
	errorResponse, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, errorResponse.StatusCode)
}

func TestSaveTenderRequiresExistingTender(t *testing.T) {
	saved := &stubSavedTenderRepo{}
	svc := NewSavedTenderService(saved, &stubTenderRepo{})

	_, err := svc.SaveTender(context.Background(), "user-1", "missing")
	require.Error(t, err)
	errorResponse, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, errorResponse.StatusCode)
	require.Empty(t, saved.saved)
}

func TestSaveTenderBookmarksExistingTender(t *testing.T) {
	saved := &stubSavedTenderRepo{}
	tenders := &stubTenderRepo{active: []models.Tender{{ID: "tender-1"}}}
	svc := NewSavedTenderService(saved, tenders)

	record, err := svc.SaveTender(context.Background(), "user-1", "tender-1")
	require.NoError(t, err)
	require.Equal(t, "tender-1", record.TenderID)
	require.Len(t, saved.saved, 1)
}

type stubSavedTenderRepo struct {
	saved []models.SavedTender
}

func (s *stubSavedTenderRepo) GetSavedTenders(_ context.Context, _ string) ([]models.SavedTenderWithTender, error) {
	return nil, nil
}

func (s *stubSavedTenderRepo) SaveTender(_ context.Context, userID, tenderID string) (*models.SavedTender, error) {
	record := models.SavedTender{UserID: userID, TenderID: tenderID}
	s.saved = append(s.saved, record)
	return &record, nil
}

func (s *stubSavedTenderRepo) UnsaveTender(_ context.Context, userID, tenderID string) error {
	kept := s.saved[:0]
	for _, record := range s.saved {
		if record.UserID != userID || record.TenderID != tenderID {
			kept = append(kept, record)
		}
	}
	s.saved = kept
	return nil
}

func (s *stubSavedTenderRepo) IsTenderSaved(_ context.Context, userID, tenderID string) (bool, error) {
	for _, record := range s.saved {
		if record.UserID == userID && record.TenderID == tenderID {
			return true, nil
		}
	}
	return false, nil
}
