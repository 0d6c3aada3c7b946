// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CheckModel represents the checks table in the database. The composite
// unique index backs the one-check-per-goal-per-day rule.
type CheckModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_checks_user_goal_date,priority:1;index:idx_checks_user_date,priority:1"`
	GoalID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_checks_user_goal_date,priority:2"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_checks_user_goal_date,priority:3;index:idx_checks_user_date,priority:2"`
	Completed bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CheckModel.
func (CheckModel) TableName() string {
	return "checks"
}

// ToEntity converts a CheckModel to a domain Check entity.
func (m *CheckModel) ToEntity() *entity.Check {
	return &entity.Check{
		ID:        m.ID,
		UserID:    m.UserID,
		GoalID:    m.GoalID,
		Date:      entity.NormalizeDate(m.Date),
		Completed: m.Completed,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CheckFromEntity creates a CheckModel from a domain Check entity.
func CheckFromEntity(check *entity.Check) *CheckModel {
	return &CheckModel{
		ID:        check.ID,
		UserID:    check.UserID,
		GoalID:    check.GoalID,
		Date:      check.Date,
		Completed: check.Completed,
		CreatedAt: check.CreatedAt,
		UpdatedAt: check.UpdatedAt,
	}
}
