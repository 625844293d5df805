package schedule

import (
	"errors"
	"net/http"
	"time"

	"bookly/internal/pkg/response"
	"bookly/internal/pkg/validator"
	"bookly/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedules", h.ListSchedules)
	rg.GET("/schedules/:id", h.GetSchedule)
}

// RegisterAdminRoutes mounts the mutating endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/schedules", h.CreateSchedule)
	rg.PUT("/schedules/:id", h.UpdateSchedule)
	rg.DELETE("/schedules/:id", h.DeleteSchedule)
}

func (h *Handler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sched, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "startTime must be in the future and endTime must be after startTime")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "SCHEDULE_CONFLICT", "A schedule already exists within this time range for the service")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create schedule")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"schedule": sched})
}

func (h *Handler) UpdateSchedule(c *gin.Context) {
	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sched, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "endTime must be after startTime")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Schedule not found")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "SCHEDULE_CONFLICT", "A schedule already exists within this time range for the service")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update schedule")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedule": sched})
}

func (h *Handler) DeleteSchedule(c *gin.Context) {
	ok, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Schedule not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete schedule")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": ok})
}

func (h *Handler) GetSchedule(c *gin.Context) {
	sched, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Schedule not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch schedule")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedule": sched})
}

func (h *Handler) ListSchedules(c *gin.Context) {
	var q ListSchedulesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	from, to, err := validator.DateRange(q.From, q.To)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var start, end *time.Time
	if q.StartTime != "" && q.EndTime != "" {
		st, err := time.Parse(time.RFC3339, q.StartTime)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "startTime must be an RFC3339 timestamp")
			return
		}
		et, err := time.Parse(time.RFC3339, q.EndTime)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "endTime must be an RFC3339 timestamp")
			return
		}
		if !et.After(st) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "endTime must be after startTime")
			return
		}
		start, end = &st, &et
	}

	filter := repository.ScheduleFilter{
		ServiceID:  q.ServiceID,
		StartTime:  start,
		EndTime:    end,
		From:       from,
		To:         to,
		Pagination: repository.Pagination{Page: q.Page, PerPage: q.PerPage},
	}
	schedules, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list schedules")
		return
	}

	page, perPage, _ := filter.Normalized()
	response.Success(c, http.StatusOK, gin.H{
		"data":    schedules,
		"total":   total,
		"page":    page,
		"perPage": perPage,
	})
}
