package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ShareClient posts plain-text farm reports to an external webhook (a
// messaging bridge the operator configures). Calls go through the circuit
// breaker so a downed bridge cannot stall the worker pool.
type ShareClient struct {
	client *resty.Client
	url    string
	cb     *CircuitBreaker
}

func NewShareClient(webhookURL string, cb *CircuitBreaker) *ShareClient {
	client := resty.New().
		SetTimeout(15*time.Second).
		SetHeader("Content-Type", "application/json")
	return &ShareClient{client: client, url: webhookURL, cb: cb}
}

// Enabled reports whether a webhook URL is configured.
func (s *ShareClient) Enabled() bool {
	return s != nil && s.url != ""
}

// Send delivers one report message. A non-2xx response counts as a failure
// for the circuit breaker.
func (s *ShareClient) Send(ctx context.Context, text string) error {
	if !s.Enabled() {
		return fmt.Errorf("share: webhook not configured")
	}
	return s.cb.Execute(func() error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetBody(map[string]string{"text": text}).
			Post(s.url)
		if err != nil {
			return fmt.Errorf("share: webhook unreachable: %w", err)
		}
		if resp.IsError() {
			return fmt.Errorf("share: webhook returned %d", resp.StatusCode())
		}
		return nil
	})
}
