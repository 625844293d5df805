package domain

import "time"

// Service is a bookable offering. Names are unique case-insensitively.
type Service struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"uniqueIndex" validate:"required,min=3"`
	Description string    `json:"description" gorm:"type:text"`
	Deleted     bool      `json:"-" gorm:"column:deleted;default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
