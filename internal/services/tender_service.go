package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tenderfindsa/tender-match-service/internal/models"
	"github.com/tenderfindsa/tender-match-service/internal/repository"
)

// TenderService serves the tender catalog to readers.
type TenderService struct {
	Repo repository.TenderRepository
}

// NewTenderService creates a new TenderService.
func NewTenderService(repo repository.TenderRepository) *TenderService {
	return &TenderService{Repo: repo}
}

var allowedStatuses = map[models.TenderStatus]bool{
	models.ActiveTender:    true,
	models.ClosedTender:    true,
	models.AwardedTender:   true,
	models.CancelledTender: true,
}

// FetchTenders returns tenders matching the filter.
func (s *TenderService) FetchTenders(ctx context.Context, filter models.TenderFilter) ([]models.Tender, error) {
	if filter.Status != "" && !allowedStatuses[models.TenderStatus(filter.Status)] {
		return nil, models.NewErrorResponse(http.StatusBadRequest, fmt.Sprintf("unsupported status: %s", filter.Status))
	}
	if filter.ValueMin != nil && filter.ValueMax != nil && *filter.ValueMin > *filter.ValueMax {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "value_min must not exceed value_max")
	}
	return s.Repo.GetTenders(ctx, filter)
}

// GetTender returns one tender by id.
func (s *TenderService) GetTender(ctx context.Context, tenderID string) (*models.Tender, error) {
	tender, err := s.Repo.GetTender(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, models.NewErrorResponse(http.StatusNotFound, "tender not found")
	}
	return tender, nil
}

// GetStats returns catalog and per-user engagement counts.
func (s *TenderService) GetStats(ctx context.Context, userID string) (*models.Stats, error) {
	return s.Repo.GetStats(ctx, userID)
}
