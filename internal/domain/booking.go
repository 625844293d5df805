package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingOngoing   BookingStatus = "ongoing"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingOngoing, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking is one user's claim on one schedule slot. UserID is set at creation
// and never changes; it is the sole authorization key for mutations.
type Booking struct {
	ID         string        `json:"id" gorm:"primaryKey;size:36"`
	UserID     string        `json:"user_id" gorm:"index;size:36"`
	ServiceID  string        `json:"service_id" gorm:"index;size:36" validate:"required"`
	ScheduleID string        `json:"schedule_id" gorm:"index;size:36" validate:"required"`
	Status     BookingStatus `json:"status" gorm:"size:16"`
	Deleted    bool          `json:"-" gorm:"column:deleted;default:false;index"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Active reports whether the booking still holds its schedule slot.
func (b *Booking) Active() bool {
	return !b.Deleted && b.Status != BookingCancelled
}
