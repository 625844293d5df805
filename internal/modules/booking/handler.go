package booking

import (
	"errors"
	"net/http"

	"bookly/internal/domain"
	"bookly/internal/modules/auth"
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
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/all", h.ListAllBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.PATCH("/bookings/:id/schedule", h.Reschedule)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	actor := auth.CurrentUser(c)
	if actor == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking input", errs)
		return
	}

	b, err := h.service.Create(c.Request.Context(), actor.ID, req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	actor := auth.CurrentUser(c)
	if actor == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	b, err := h.service.Get(c.Request.Context(), actor.ID, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to fetch booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	actor := auth.CurrentUser(c)
	if actor == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), actor.ID, c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		h.writeError(c, err, "Failed to update booking status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Reschedule(c *gin.Context) {
	actor := auth.CurrentUser(c)
	if actor == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Reschedule(c.Request.Context(), actor.ID, c.Param("id"), req.ScheduleID)
	if err != nil {
		h.writeError(c, err, "Failed to reschedule booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	actor := auth.CurrentUser(c)
	if actor == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	ok, err := h.service.Delete(c.Request.Context(), actor.ID, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to delete booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": ok})
}

func (h *Handler) ListBookings(c *gin.Context) {
	actor := auth.CurrentUser(c)
	if actor == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	filter, err := h.buildFilter(q)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	bookings, total, err := h.service.List(c.Request.Context(), actor.ID, filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	h.writeList(c, bookings, total, filter)
}

func (h *Handler) ListAllBookings(c *gin.Context) {
	actor := auth.CurrentUser(c)
	if actor == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var q ListAllBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	filter, err := h.buildFilter(q.ListBookingsQuery)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	filter.UserID = q.UserID

	bookings, total, err := h.service.ListAll(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	h.writeList(c, bookings, total, filter)
}

func (h *Handler) buildFilter(q ListBookingsQuery) (repository.BookingFilter, error) {
	if q.Status != "" && !domain.BookingStatus(q.Status).Valid() {
		return repository.BookingFilter{}, errors.New("status must be one of pending, ongoing, completed, cancelled")
	}

	from, to, err := validator.DateRange(q.From, q.To)
	if err != nil {
		return repository.BookingFilter{}, err
	}

	return repository.BookingFilter{
		Status:     q.Status,
		ServiceID:  q.ServiceID,
		From:       from,
		To:         to,
		Pagination: repository.Pagination{Page: q.Page, PerPage: q.PerPage},
	}, nil
}

func (h *Handler) writeList(c *gin.Context, bookings []domain.Booking, total int64, f repository.BookingFilter) {
	page, perPage, _ := f.Normalized()
	response.Success(c, http.StatusOK, gin.H{
		"data":    bookings,
		"total":   total,
		"page":    page,
		"perPage": perPage,
	})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking input")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrServiceNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
	case errors.Is(err, ErrScheduleNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Schedule not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not authorized to modify this booking")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Schedule is already booked")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
