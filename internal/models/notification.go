package models

import "time"

type (
	NotificationChannel string // Outbound message channel
	NotificationStatus  string // Delivery status of an attempted message
)

const (
	EmailChannel NotificationChannel = "email"
	SMSChannel   NotificationChannel = "sms"

	PendingNotification NotificationStatus = "pending"
	SentNotification    NotificationStatus = "sent"
	FailedNotification  NotificationStatus = "failed"
)

// Notification represents one attempted outbound message. The record is
// created before the dispatch attempt and updated with the outcome after.
type Notification struct {
	ID        string              `json:"id"`
	UserID    string              `json:"userId"`
	Channel   NotificationChannel `json:"channel"`
	Subject   *string             `json:"subject,omitempty"`
	Message   string              `json:"message"`
	Recipient string              `json:"recipient"`
	Status    NotificationStatus  `json:"status"`
	SentAt    *time.Time          `json:"sentAt,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}
