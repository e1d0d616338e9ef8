package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/models"
	"github.com/tenderfindsa/tender-match-service/internal/repository"
	"github.com/tenderfindsa/tender-match-service/internal/scoring"

	"go.uber.org/zap"
)

// Matching policy thresholds. Policy constants, not user-configurable.
const (
	// matchThreshold is the minimum score for persisting a match.
	matchThreshold = 50
	// notifyThreshold is the minimum score for notifying the user.
	notifyThreshold = 80
)

// MatchingService orchestrates scoring the active tender catalog against
// business profiles and persisting the results.
type MatchingService struct {
	Profiles      repository.ProfileRepository
	Tenders       repository.TenderRepository
	Matches       repository.MatchRepository
	Users         repository.UserRepository
	Notifier      NotificationSender
	Logger        *zap.Logger
	NotifyTimeout time.Duration
}

// NewMatchingService creates a new MatchingService.
func NewMatchingService(
	profiles repository.ProfileRepository,
	tenders repository.TenderRepository,
	matches repository.MatchRepository,
	users repository.UserRepository,
	notifier NotificationSender,
	logger *zap.Logger,
	notifyTimeout time.Duration,
) *MatchingService {
	return &MatchingService{
		Profiles:      profiles,
		Tenders:       tenders,
		Matches:       matches,
		Users:         users,
		Notifier:      notifier,
		Logger:        logger,
		NotifyTimeout: notifyTimeout,
	}
}

// FindMatches scores every active tender against the user's profile, upserts
// matches at or above the match threshold and notifies the user about matches
// at or above the notify threshold. A user without a profile is a no-op.
// Upsert failures and notification failures are contained per tender; only
// failing to load the inputs aborts the run.
func (s *MatchingService) FindMatches(ctx context.Context, userID string) error {
	profile, err := s.Profiles.GetBusinessProfile(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load business profile: %w", err)
	}
	if profile == nil {
		s.Logger.Info("no business profile found, skipping matching", zap.String("userId", userID))
		return nil
	}

	user, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		s.Logger.Info("user not found, skipping matching", zap.String("userId", userID))
		return nil
	}

	tenders, err := s.Tenders.GetActiveTenders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active tenders: %w", err)
	}

	// Dispatches run off the request context so a slow gateway cannot stall
	// the scoring loop; the run still waits for its own dispatches before
	// returning so batch processes do not exit with sends in flight.
	var dispatches sync.WaitGroup
	matched := 0

	for _, tender := range tenders {
		result := scoring.Score(*profile, tender)
		if result.Score < matchThreshold {
			continue
		}

		_, err := s.Matches.UpsertMatch(ctx, models.TenderMatch{
			UserID:       userID,
			TenderID:     tender.ID,
			MatchScore:   result.Score,
			MatchReasons: result.Reasons,
		})
		if err != nil {
			s.Logger.Error("failed to upsert match",
				zap.String("userId", userID),
				zap.String("tenderId", tender.ID),
				zap.Error(err))
			continue
		}
		matched++

		if result.Score >= notifyThreshold {
			dispatches.Add(1)
			go func(title string, score int) {
				defer dispatches.Done()
				notifyCtx, cancel := context.WithTimeout(context.Background(), s.NotifyTimeout)
				defer cancel()
				s.Notifier.SendTenderMatchNotification(notifyCtx, userID, user.Email,
					profile.PhoneNumber, title, score,
					profile.EmailNotifications, profile.SMSNotifications)
			}(tender.Title, result.Score)
		}
	}

	dispatches.Wait()

	s.Logger.Info("matching completed",
		zap.String("userId", userID),
		zap.Int("tendersScored", len(tenders)),
		zap.Int("matches", matched))
	return nil
}

// RunMatchingForAllUsers runs matching for every user holding a business
// profile. Per-user failures are logged and do not abort the batch.
func (s *MatchingService) RunMatchingForAllUsers(ctx context.Context) error {
	userIDs, err := s.Profiles.ListProfileUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profile users: %w", err)
	}

	s.Logger.Info("starting matching for all users", zap.Int("users", len(userIDs)))
	for _, userID := range userIDs {
		if err := s.FindMatches(ctx, userID); err != nil {
			s.Logger.Error("matching failed for user", zap.String("userId", userID), zap.Error(err))
		}
	}
	s.Logger.Info("matching for all users completed")
	return nil
}

// GetMatches returns the user's persisted matches.
func (s *MatchingService) GetMatches(ctx context.Context, userID string, limit int) ([]models.MatchWithTender, error) {
	return s.Matches.GetMatches(ctx, userID, limit)
}

// MarkMatchViewed marks a match as inspected by the user.
func (s *MatchingService) MarkMatchViewed(ctx context.Context, userID, tenderID string) error {
	return s.Matches.MarkMatchViewed(ctx, userID, tenderID)
}
