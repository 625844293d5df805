package domain

import "time"

// Schedule is a time slot of exactly one service. Schedules are hard-deleted,
// there is no deleted flag.
type Schedule struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ServiceID string    `json:"service_id" gorm:"index;size:36" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
