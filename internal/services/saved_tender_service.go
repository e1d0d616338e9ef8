package services

import (
	"context"
	"net/http"

	"github.com/tenderfindsa/tender-match-service/internal/models"
	"github.com/tenderfindsa/tender-match-service/internal/repository"
)

// SavedTenderService manages user bookmarks.
type SavedTenderService struct {
	Repo    repository.SavedTenderRepository
	Tenders repository.TenderRepository
}

// NewSavedTenderService creates a new SavedTenderService.
func NewSavedTenderService(repo repository.SavedTenderRepository, tenders repository.TenderRepository) *SavedTenderService {
	return &SavedTenderService{Repo: repo, Tenders: tenders}
}

// GetSavedTenders returns the user's bookmarks.
func (s *SavedTenderService) GetSavedTenders(ctx context.Context, userID string) ([]models.SavedTenderWithTender, error) {
	return s.Repo.GetSavedTenders(ctx, userID)
}

// SaveTender bookmarks a tender for the user.
func (s *SavedTenderService) SaveTender(ctx context.Context, userID, tenderID string) (*models.SavedTender, error) {
	tender, err := s.Tenders.GetTender(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, models.NewErrorResponse(http.StatusNotFound, "tender not found")
	}
	return s.Repo.SaveTender(ctx, userID, tenderID)
}

// UnsaveTender removes a bookmark.
func (s *SavedTenderService) UnsaveTender(ctx context.Context, userID, tenderID string) error {
	return s.Repo.UnsaveTender(ctx, userID, tenderID)
}

// IsTenderSaved reports whether the user bookmarked the tender.
func (s *SavedTenderService) IsTenderSaved(ctx context.Context, userID, tenderID string) (bool, error) {
	return s.Repo.IsTenderSaved(ctx, userID, tenderID)
}
