// Package dispatch sends outbound messages over the configured email and SMS
// transports. Callers record delivery outcomes; the dispatchers themselves
// only report success or failure per attempt.
package dispatch

import (
	"context"
	"fmt"

	"github.com/tenderfindsa/tender-match-service/internal/models"
)

// Dispatcher sends one message on the given channel.
type Dispatcher interface {
	Send(ctx context.Context, channel models.NotificationChannel, recipient, subject, body string) error
}

// Gateway routes messages to the channel transports.
type Gateway struct {
	Email *SMTPEmailSender
	SMS   *HTTPSMSSender
}

// NewGateway creates a Gateway over the given transports.
func NewGateway(email *SMTPEmailSender, sms *HTTPSMSSender) *Gateway {
	return &Gateway{Email: email, SMS: sms}
}

// Send dispatches one message on the requested channel.
func (g *Gateway) Send(ctx context.Context, channel models.NotificationChannel, recipient, subject, body string) error {
	switch channel {
	case models.EmailChannel:
		return g.Email.Send(ctx, recipient, subject, body)
	case models.SMSChannel:
		return g.SMS.Send(ctx, recipient, body)
	default:
		return fmt.Errorf("unsupported notification channel: %s", channel)
	}
}
