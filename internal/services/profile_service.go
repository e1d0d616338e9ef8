package services

import (
	"context"
	"net/http"

	"github.com/tenderfindsa/tender-match-service/internal/models"
	"github.com/tenderfindsa/tender-match-service/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ProfileService manages business profile submissions. Saving a profile
// triggers a matching run so match results follow profile changes.
type ProfileService struct {
	Repo     repository.ProfileRepository
	Matching *MatchingService
	Logger   *zap.Logger
	validate *validator.Validate
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo repository.ProfileRepository, matching *MatchingService, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		Repo:     repo,
		Matching: matching,
		Logger:   logger,
		validate: validator.New(),
	}
}

// GetProfile returns the user's business profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.BusinessProfile, error) {
	profile, err := s.Repo.GetBusinessProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewErrorResponse(http.StatusNotFound, "business profile not found")
	}
	return profile, nil
}

// SaveProfile validates and creates or updates the user's profile, then
// recomputes matches. Matching failures do not fail the save; the profile is
// the primary write.
func (s *ProfileService) SaveProfile(ctx context.Context, userID string, req models.BusinessProfileRequest) (*models.BusinessProfile, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, models.NewErrorResponse(http.StatusBadRequest, err.Error())
	}
	if req.PreferredValueMin != nil && req.PreferredValueMax != nil &&
		*req.PreferredValueMin > *req.PreferredValueMax {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "preferredValueMin must not exceed preferredValueMax")
	}
	if req.Language == "" {
		req.Language = "en"
	}
	// The array columns are not nullable; an absent list stores as empty.
	if req.IndustryCategories == nil {
		req.IndustryCategories = []string{}
	}
	if req.Provinces == nil {
		req.Provinces = []string{}
	}

	existing, err := s.Repo.GetBusinessProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var profile *models.BusinessProfile
	if existing != nil {
		profile, err = s.Repo.UpdateBusinessProfile(ctx, userID, req)
	} else {
		profile, err = s.Repo.CreateBusinessProfile(ctx, userID, req)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Matching.FindMatches(ctx, userID); err != nil {
		s.Logger.Warn("matching after profile save failed", zap.String("userId", userID), zap.Error(err))
	}

	return profile, nil
}
