package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"planiftchop/internal/config"
	"planiftchop/internal/infra"
)

// mailAPIPayload is the JSON body posted to the hosted mail provider.
type mailAPIPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

// APINotifier posts messages to a transactional mail HTTP API, guarded
// by a circuit breaker so a down provider fast-fails instead of tying
// up worker goroutines on timeouts.
type APINotifier struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	cb         *infra.CircuitBreaker
}

func NewAPINotifier(cfg *config.Config, cb *infra.CircuitBreaker) *APINotifier {
	return &APINotifier{
		baseURL:    cfg.MailAPIURL,
		apiKey:     cfg.MailAPIKey,
		from:       cfg.MailFrom,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cb:         cb,
	}
}

func (n *APINotifier) Name() string { return "api" }

// Send posts the message to the provider's /messages endpoint.
func (n *APINotifier) Send(ctx context.Context, recipients []string, subject, text, html string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("mailapi: no recipients")
	}

	body, err := json.Marshal(mailAPIPayload{
		From:    n.from,
		To:      recipients,
		Subject: subject,
		Text:    text,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("mailapi: marshal payload: %w", err)
	}

	return n.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/messages", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("mailapi: create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+n.apiKey)

		resp, err := n.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("mailapi: provider unreachable: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("mailapi: provider returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
		}
		return nil
	})
}
