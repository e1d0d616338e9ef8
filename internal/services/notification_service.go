package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/dispatch"
	"github.com/tenderfindsa/tender-match-service/internal/models"
	"github.com/tenderfindsa/tender-match-service/internal/repository"

	"go.uber.org/zap"
)

// NotificationSender is the outbound side of the matching orchestrator.
type NotificationSender interface {
	SendTenderMatchNotification(ctx context.Context, userID, email string, phone *string, tenderTitle string, matchScore int, emailEnabled, smsEnabled bool)
}

// NotificationService wraps dispatch attempts in notification records so every
// attempt and its outcome is observable, whatever the transport does.
type NotificationService struct {
	Repo       repository.NotificationRepository
	Dispatcher dispatch.Dispatcher
	Logger     *zap.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repository.NotificationRepository, dispatcher dispatch.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{Repo: repo, Dispatcher: dispatcher, Logger: logger}
}

// SendTenderMatchNotification notifies a user about a high-scoring match on
// every enabled channel with a present contact. Channel failures are recorded
// and logged independently; nothing is returned because notification is
// best-effort by contract.
func (s *NotificationService) SendTenderMatchNotification(ctx context.Context, userID, email string, phone *string, tenderTitle string, matchScore int, emailEnabled, smsEnabled bool) {
	subject := fmt.Sprintf("New Tender Match: %d%% Match Found", matchScore)
	message := fmt.Sprintf(
		"A new tender %q matches your business profile with %d%% compatibility. Check TenderFind SA for details.",
		tenderTitle, matchScore)

	if emailEnabled && email != "" {
		if err := s.sendOnChannel(ctx, userID, models.EmailChannel, email, &subject, message); err != nil {
			s.Logger.Error("failed to send email notification",
				zap.String("userId", userID), zap.Error(err))
		}
	}

	if smsEnabled && phone != nil && *phone != "" {
		if err := s.sendOnChannel(ctx, userID, models.SMSChannel, *phone, nil, message); err != nil {
			s.Logger.Error("failed to send sms notification",
				zap.String("userId", userID), zap.Error(err))
		}
	}
}

// sendOnChannel records the attempt as pending, dispatches, then records the
// outcome as sent or failed.
func (s *NotificationService) sendOnChannel(ctx context.Context, userID string, channel models.NotificationChannel, recipient string, subject *string, message string) error {
	record, err := s.Repo.CreateNotification(ctx, models.Notification{
		UserID:    userID,
		Channel:   channel,
		Subject:   subject,
		Message:   message,
		Recipient: recipient,
		Status:    models.PendingNotification,
	})
	if err != nil {
		return fmt.Errorf("failed to create notification record: %w", err)
	}

	var subjectText string
	if subject != nil {
		subjectText = *subject
	}

	if err := s.Dispatcher.Send(ctx, channel, recipient, subjectText, message); err != nil {
		if updateErr := s.Repo.UpdateNotificationStatus(ctx, record.ID, models.FailedNotification, nil); updateErr != nil {
			s.Logger.Error("failed to mark notification as failed",
				zap.String("notificationId", record.ID), zap.Error(updateErr))
		}
		return err
	}

	now := time.Now().UTC()
	if err := s.Repo.UpdateNotificationStatus(ctx, record.ID, models.SentNotification, &now); err != nil {
		s.Logger.Error("failed to mark notification as sent",
			zap.String("notificationId", record.ID), zap.Error(err))
	}
	return nil
}

// GetNotifications returns the user's notification history.
func (s *NotificationService) GetNotifications(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	return s.Repo.GetNotifications(ctx, userID, limit)
}
