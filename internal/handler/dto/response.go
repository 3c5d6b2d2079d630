package dto

import (
	"time"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

const dayFormat = "2006-01-02"

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	District  string  `json:"district"`
}

type PaymentResponse struct {
	Method          string  `json:"method"`
	Status          string  `json:"status"`
	Amount          float64 `json:"amount"`
	DepositAmount   float64 `json:"deposit_amount"`
	TransactionID   string  `json:"transaction_id,omitempty"`
	PaymentIntentID string  `json:"payment_intent_id,omitempty"`
}

type BookingResponse struct {
	ID          string           `json:"id"`
	ClientID    string           `json:"client_id"`
	ServiceID   string           `json:"service_id"`
	ProviderID  *string          `json:"provider_id"`
	DriverID    *string          `json:"driver_id"`
	BookingDate string           `json:"booking_date"`
	BookingTime string           `json:"booking_time"`
	Location    LocationResponse `json:"location"`
	Status      string           `json:"status"`
	Payment     PaymentResponse  `json:"payment"`
	Notes       string           `json:"notes,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

type ScheduleResponse struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	District  string   `json:"district"`
	IsLocked  bool     `json:"is_locked"`
	Bookings  []string `json:"bookings"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type ServiceResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category"`
	ParentID      *string `json:"parent_id"`
	DurationMin   int     `json:"duration_minutes"`
	Price         float64 `json:"price"`
	DepositAmount float64 `json:"deposit_amount"`
	IsActive      bool    `json:"is_active"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
}

type DateAvailabilityResponse struct {
	Available   []string `json:"available"`
	Unavailable []string `json:"unavailable"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse is the 409 body for a district conflict: the caller
// gets the owning district and, when the window has one, an open day to
// offer the client instead.
type ConflictResponse struct {
	Error          string  `json:"error"`
	LockedDistrict string  `json:"locked_district"`
	SuggestedDate  *string `json:"suggested_date"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		ClientID:    b.ClientID,
		ServiceID:   b.ServiceID,
		ProviderID:  b.ProviderID,
		DriverID:    b.DriverID,
		BookingDate: b.BookingDate.Format(dayFormat),
		BookingTime: b.BookingTime,
		Location: LocationResponse{
			Latitude:  b.Location.Latitude,
			Longitude: b.Location.Longitude,
			Address:   b.Location.Address,
			District:  b.Location.District,
		},
		Status: string(b.Status),
		Payment: PaymentResponse{
			Method:          string(b.Payment.Method),
			Status:          string(b.Payment.Status),
			Amount:          b.Payment.Amount,
			DepositAmount:   b.Payment.DepositAmount,
			TransactionID:   b.Payment.TransactionID,
			PaymentIntentID: b.Payment.PaymentIntentID,
		},
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToScheduleResponse(s *domain.Schedule) ScheduleResponse {
	bookings := s.BookingIDs
	if bookings == nil {
		bookings = []string{}
	}
	return ScheduleResponse{
		ID:        s.ID,
		Date:      s.Date.Format(dayFormat),
		District:  s.District,
		IsLocked:  s.IsLocked,
		Bookings:  bookings,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Category:      string(s.Category),
		ParentID:      s.ParentID,
		DurationMin:   s.DurationMin,
		Price:         s.Price,
		DepositAmount: s.DepositAmount,
		IsActive:      s.IsActive,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		PhoneNumber:    u.PhoneNumber,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToDateAvailabilityResponse(a *domain.DateAvailability) DateAvailabilityResponse {
	available := make([]string, 0, len(a.Available))
	for _, d := range a.Available {
		available = append(available, d.Format(dayFormat))
	}
	unavailable := a.Unavailable
	if unavailable == nil {
		unavailable = []string{}
	}
	return DateAvailabilityResponse{
		Available:   available,
		Unavailable: unavailable,
	}
}

func ToConflictResponse(e *domain.DistrictConflictError) ConflictResponse {
	resp := ConflictResponse{
		Error:          e.Error(),
		LockedDistrict: e.LockedDistrict,
	}
	if e.SuggestedDate != nil {
		s := e.SuggestedDate.Format(dayFormat)
		resp.SuggestedDate = &s
	}
	return resp
}
