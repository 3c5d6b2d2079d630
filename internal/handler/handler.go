package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
	"github.com/JamilPr1/whatsapp-booking-system/internal/handler/dto"
	"github.com/JamilPr1/whatsapp-booking-system/internal/middleware"
)

const dayFormat = "2006-01-02"

type BookingSvc interface {
	CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, requester domain.Requester, filter domain.BookingFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string, requester domain.Requester) (*domain.Booking, error)
	CreatePaymentIntent(ctx context.Context, bookingID string) (*domain.PaymentIntent, error)
	ConfirmPayment(ctx context.Context, intentID string) (*domain.Booking, error)
}

type AvailabilitySvc interface {
	AvailableDates(ctx context.Context, district string) (*domain.DateAvailability, error)
	TimeSlots(ctx context.Context, date time.Time, district string) ([]domain.TimeSlot, error)
}

type ScheduleSvc interface {
	List(ctx context.Context) ([]*domain.Schedule, error)
	Unlock(ctx context.Context, id string) (*domain.Schedule, error)
	SetDistrict(ctx context.Context, id, district string) (*domain.Schedule, error)
}

type CatalogSvc interface {
	Create(ctx context.Context, input domain.CreateServiceInput) (*domain.Service, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	bookingService      BookingSvc
	availabilityService AvailabilitySvc
	scheduleService     ScheduleSvc
	catalogService      CatalogSvc
	userService         UserSvc
}

func NewHandler(
	bookingService BookingSvc,
	availabilityService AvailabilitySvc,
	scheduleService ScheduleSvc,
	catalogService CatalogSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		bookingService:      bookingService,
		availabilityService: availabilityService,
		scheduleService:     scheduleService,
		catalogService:      catalogService,
		userService:         userService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	requester, ok := middleware.RequesterFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookingDate, err := time.Parse(dayFormat, req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid booking_date format, expected YYYY-MM-DD",
		})
		return
	}

	clientID := requester.UserID
	if requester.IsAdmin() && req.ClientID != "" {
		clientID = req.ClientID
	}

	input := domain.CreateBookingInput{
		ClientID:    clientID,
		ServiceID:   req.ServiceID,
		BookingDate: bookingDate,
		BookingTime: req.BookingTime,
		Location: domain.Location{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Address:   req.Location.Address,
			District:  req.Location.District,
		},
		Method: domain.PaymentMethod(req.Payment.Method),
		Notes:  req.Notes,
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	requester, ok := middleware.RequesterFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var filter domain.BookingFilter
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(dayFormat, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.BookingStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown status"})
			return
		}
		filter.Status = status
	}

	bookings, err := h.bookingService.List(c.Request.Context(), requester, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	requester, ok := middleware.RequesterFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), id, requester)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"message": "booking cancelled successfully",
		"booking": dto.ToBookingResponse(booking),
		"note":    "refund processing is admin responsibility",
	})
}

// Payments

func (h *Handler) CreatePaymentIntent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	intent, err := h.bookingService.CreatePaymentIntent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, intent)
}

func (h *Handler) ConfirmPayment(c *ginext.Context) {
	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.ConfirmPayment(c.Request.Context(), req.PaymentIntentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Availability

func (h *Handler) GetAvailableDates(c *ginext.Context) {
	availability, err := h.availabilityService.AvailableDates(c.Request.Context(), c.Param("district"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDateAvailabilityResponse(availability))
}

func (h *Handler) GetTimeSlots(c *ginext.Context) {
	rawDate := c.Query("date")
	district := c.Query("district")
	if rawDate == "" || district == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date and district are required"})
		return
	}

	date, err := time.Parse(dayFormat, rawDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	slots, err := h.availabilityService.TimeSlots(c.Request.Context(), date, district)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// Admin schedules

func (h *Handler) ListSchedules(c *ginext.Context) {
	schedules, err := h.scheduleService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		resp = append(resp, dto.ToScheduleResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UnlockSchedule(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	sched, err := h.scheduleService.Unlock(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"message":  "schedule unlocked",
		"schedule": dto.ToScheduleResponse(sched),
	})
}

func (h *Handler) SetScheduleDistrict(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	var req dto.SetDistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sched, err := h.scheduleService.SetDistrict(c.Request.Context(), id, req.District)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"message":  "district updated",
		"schedule": dto.ToScheduleResponse(sched),
	})
}

// Services

func (h *Handler) CreateService(c *ginext.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateServiceInput{
		Name:          req.Name,
		Description:   req.Description,
		Category:      domain.ServiceCategory(req.Category),
		ParentID:      req.ParentID,
		DurationMin:   req.DurationMin,
		Price:         req.Price,
		DepositAmount: req.DepositAmount,
	}

	svc, err := h.catalogService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceResponse(svc))
}

func (h *Handler) ListServices(c *ginext.Context) {
	activeOnly := c.Query("all") == ""

	services, err := h.catalogService.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, dto.ToServiceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var conflict *domain.DistrictConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, dto.ToConflictResponse(conflict))
		return
	}

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrScheduleNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCancellationWindow),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrPhoneTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
