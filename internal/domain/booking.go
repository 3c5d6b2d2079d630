package domain

import (
	"fmt"
	"strconv"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in-progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

func (s BookingStatus) Valid() bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodOnline   PaymentMethod = "online"
	PaymentMethodInPerson PaymentMethod = "in-person"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	District  string  `json:"district"`
}

type Payment struct {
	Method          PaymentMethod `json:"method"`
	Status          PaymentStatus `json:"status"`
	Amount          float64       `json:"amount"`
	DepositAmount   float64       `json:"deposit_amount"`
	TransactionID   string        `json:"transaction_id,omitempty"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
}

type Booking struct {
	ID             string        `json:"id"`
	ClientID       string        `json:"client_id"`
	ServiceID      string        `json:"service_id"`
	ProviderID     *string       `json:"provider_id"`
	DriverID       *string       `json:"driver_id"`
	BookingDate    time.Time     `json:"booking_date"` // day granularity
	BookingTime    string        `json:"booking_time"` // HH:MM, 24h
	Location       Location      `json:"location"`
	Status         BookingStatus `json:"status"`
	Payment        Payment       `json:"payment"`
	Notes          string        `json:"notes,omitempty"`
	ConversationID string        `json:"conversation_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Hour returns the hour component of BookingTime. Minutes are ignored
// on purpose: slot blocking is whole-hour, so 10:00 and 10:30 collide.
func (b *Booking) Hour() (int, error) {
	if len(b.BookingTime) < 2 {
		return 0, fmt.Errorf("%w: malformed booking time %q", ErrValidation, b.BookingTime)
	}
	h, err := strconv.Atoi(b.BookingTime[:2])
	if err != nil {
		return 0, fmt.Errorf("%w: malformed booking time %q", ErrValidation, b.BookingTime)
	}
	return h, nil
}

// StartsAt combines the booking's date and HH:MM time in loc.
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", b.BookingTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed booking time %q", ErrValidation, b.BookingTime)
	}
	y, m, d := b.BookingDate.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), nil
}

type CreateBookingInput struct {
	ClientID    string
	ServiceID   string
	BookingDate time.Time
	BookingTime string
	Location    Location
	Method      PaymentMethod
	Status      BookingStatus // optional, defaults to pending
	Notes       string
}

type BookingFilter struct {
	ClientID string
	Date     *time.Time
	Status   BookingStatus
}

type PaymentIntent struct {
	ID           string `json:"payment_intent_id"`
	ClientSecret string `json:"client_secret"`
}

type TimeSlot struct {
	Time      string `json:"time"` // HH:00
	Available bool   `json:"available"`
}

type DateAvailability struct {
	Available   []time.Time `json:"available"`
	Unavailable []string    `json:"unavailable"` // YYYY-MM-DD
}
