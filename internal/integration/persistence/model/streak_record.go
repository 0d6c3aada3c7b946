// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// StreakRecordModel represents the streak_records table in the database.
// Aggregate records are stored with the zero UUID instead of NULL so the
// composite unique index has a stable conflict target.
type StreakRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_streak_records_user_goal,priority:1"`
	GoalID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_streak_records_user_goal,priority:2"`
	Value      int       `gorm:"not null;default:0"`
	ObservedAt time.Time `gorm:"type:date;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the StreakRecordModel.
func (StreakRecordModel) TableName() string {
	return "streak_records"
}

// ToEntity converts a StreakRecordModel to a domain StreakRecord entity.
func (m *StreakRecordModel) ToEntity() *entity.StreakRecord {
	var goalID *uuid.UUID
	if m.GoalID != uuid.Nil {
		id := m.GoalID
		goalID = &id
	}
	return &entity.StreakRecord{
		ID:         m.ID,
		UserID:     m.UserID,
		GoalID:     goalID,
		Value:      m.Value,
		ObservedAt: entity.NormalizeDate(m.ObservedAt),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// StreakRecordFromEntity creates a StreakRecordModel from a domain StreakRecord entity.
func StreakRecordFromEntity(record *entity.StreakRecord) *StreakRecordModel {
	goalID := uuid.Nil
	if record.GoalID != nil {
		goalID = *record.GoalID
	}
	return &StreakRecordModel{
		ID:         record.ID,
		UserID:     record.UserID,
		GoalID:     goalID,
		Value:      record.Value,
		ObservedAt: record.ObservedAt,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}
