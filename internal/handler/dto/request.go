package dto

type LocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	Address   string  `json:"address"`
	District  string  `json:"district"`
}

type PaymentRequest struct {
	Method string `json:"method" binding:"required,oneof=online in-person"`
}

type CreateBookingRequest struct {
	ServiceID   string          `json:"service_id" binding:"required,uuid"`
	ClientID    string          `json:"client_id"` // admin-only override
	BookingDate string          `json:"booking_date" binding:"required"` // YYYY-MM-DD
	BookingTime string          `json:"booking_time" binding:"required"`
	Location    LocationRequest `json:"location" binding:"required"`
	Payment     PaymentRequest  `json:"payment" binding:"required"`
	Notes       string          `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

type SetDistrictRequest struct {
	District string `json:"district" binding:"required"`
}

type CreateServiceRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category" binding:"omitempty,oneof=main sub"`
	ParentID      *string `json:"parent_id" binding:"omitempty,uuid"`
	DurationMin   int     `json:"duration_minutes" binding:"omitempty,gt=0"`
	Price         float64 `json:"price" binding:"required,gte=0"`
	DepositAmount float64 `json:"deposit_amount" binding:"gte=0"`
}

type CreateUserRequest struct {
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number" binding:"required"`
	Role           string `json:"role" binding:"omitempty,oneof=client admin provider driver"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
