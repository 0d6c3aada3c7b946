// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueStreakMilestoneInput represents the input for queueing a streak milestone email.
type QueueStreakMilestoneInput struct {
	UserEmail  string
	UserName   string
	StreakDays int
	ObservedOn string
}

// EmailService defines the interface for queueing notification emails.
type EmailService interface {
	// QueueStreakMilestoneEmail queues a congratulation email for a new best streak.
	QueueStreakMilestoneEmail(ctx context.Context, input QueueStreakMilestoneInput) error
}
