// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Icon         string     `gorm:"type:varchar(50);not null;default:'check-circle'"`
	Positive     bool       `gorm:"not null;default:true"`
	Points       int        `gorm:"not null;default:1"`
	DisplayOrder int        `gorm:"not null;default:0"`
	Active       bool       `gorm:"not null;default:true;index"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Icon:       m.Icon,
		Positive:   m.Positive,
		Points:     m.Points,
		Order:      m.DisplayOrder,
		Active:     m.Active,
		CategoryID: m.CategoryID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Name:         goal.Name,
		Icon:         goal.Icon,
		Positive:     goal.Positive,
		Points:       goal.Points,
		DisplayOrder: goal.Order,
		Active:       goal.Active,
		CategoryID:   goal.CategoryID,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}
