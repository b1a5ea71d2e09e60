// Package notify delivers generated reports to family members by email.
// Two bindings exist: direct SMTP and a hosted transactional mail API.
// Delivery failure is reported to the caller, never raised as a hard
// error, so a down mail provider cannot break list generation.
package notify

import (
	"context"
	"fmt"

	"planiftchop/internal/config"
	"planiftchop/internal/infra"
)

// Delivery is the outcome of a send attempt.
type Delivery struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Notifier sends a multipart (text + HTML) email to one or more recipients.
type Notifier interface {
	Send(ctx context.Context, recipients []string, subject, text, html string) error
	Name() string
}

// New selects the Notifier binding from configuration.
// The API binding runs through cb to fast-fail when the provider is down.
func New(cfg *config.Config, cb *infra.CircuitBreaker) (Notifier, error) {
	switch cfg.Notifier {
	case "smtp":
		return NewSMTPNotifier(cfg), nil
	case "api":
		return NewAPINotifier(cfg, cb), nil
	default:
		return nil, fmt.Errorf("notify: unknown notifier binding %q", cfg.Notifier)
	}
}
