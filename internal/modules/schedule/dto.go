package schedule

import "time"

type CreateScheduleRequest struct {
	ServiceID string    `json:"service_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type UpdateScheduleRequest struct {
	ServiceID string    `json:"service_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type ListSchedulesQuery struct {
	ServiceID string `form:"serviceId"`
	StartTime string `form:"startTime"`
	EndTime   string `form:"endTime"`
	From      string `form:"from"`
	To        string `form:"to"`
	Page      int    `form:"page"`
	PerPage   int    `form:"perPage"`
}
