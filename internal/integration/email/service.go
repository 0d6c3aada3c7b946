// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueStreakMilestoneEmail queues a congratulation email for a new best streak.
func (s *Service) QueueStreakMilestoneEmail(ctx context.Context, input adapter.QueueStreakMilestoneInput) error {
	subject := fmt.Sprintf("%d day streak! Keep it going - Habit Tracker", input.StreakDays)

	templateData := map[string]interface{}{
		"user_name":   input.UserName,
		"streak_days": input.StreakDays,
		"observed_on": input.ObservedOn,
	}

	job := entity.NewEmailJob(
		entity.TemplateStreakMilestone,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue streak milestone email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
