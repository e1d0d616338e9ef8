package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPSMSSender delivers SMS messages through an HTTP gateway API.
type HTTPSMSSender struct {
	APIURL string
	Token  string
	Sender string
	client *http.Client
}

// NewHTTPSMSSender creates a new HTTPSMSSender.
func NewHTTPSMSSender(apiURL, token, sender string) *HTTPSMSSender {
	return &HTTPSMSSender{
		APIURL: apiURL,
		Token:  token,
		Sender: sender,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type smsRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// Send delivers one SMS through the gateway.
func (s *HTTPSMSSender) Send(ctx context.Context, to, body string) error {
	payload, err := json.Marshal(smsRequest{From: s.Sender, To: to, Body: body})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.APIURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
