package booking

type CreateBookingRequest struct {
	ServiceID  string `json:"service_id" validate:"required"`
	ScheduleID string `json:"schedule_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=pending ongoing completed cancelled"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending ongoing completed cancelled"`
}

type RescheduleRequest struct {
	ScheduleID string `json:"schedule_id" binding:"required"`
}

type ListBookingsQuery struct {
	Status    string `form:"status"`
	ServiceID string `form:"serviceId"`
	From      string `form:"from"`
	To        string `form:"to"`
	Page      int    `form:"page"`
	PerPage   int    `form:"perPage"`
}

// ListAllBookingsQuery adds the userId filter available on the unscoped
// listing.
type ListAllBookingsQuery struct {
	ListBookingsQuery
	UserID string `form:"userId"`
}
